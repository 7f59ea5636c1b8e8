package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dkanak/shopcart-backend/internal/constants"
	"github.com/dkanak/shopcart-backend/internal/response"
	"github.com/dkanak/shopcart-backend/internal/services"
)

type SeedHandler struct {
	seedService services.SeedService
}

func NewSeedHandler(seedService services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

func (sh *SeedHandler) Run(c *gin.Context) {
	if err := sh.seedService.Run(c.Request.Context()); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": constants.MsgSeederDone})
}
