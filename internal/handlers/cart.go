package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dkanak/shopcart-backend/internal/apperr"
	"github.com/dkanak/shopcart-backend/internal/constants"
	"github.com/dkanak/shopcart-backend/internal/requestdata"
	"github.com/dkanak/shopcart-backend/internal/response"
	"github.com/dkanak/shopcart-backend/internal/services"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

var cartAddMessages = map[string]string{
	"productid": constants.MsgProductInvalid,
	"quantity":  constants.MsgQuantityInvalid,
}

func (ch *CartHandler) Add(c *gin.Context) {
	identity := requestdata.GetIdentity(c.Request.Context())
	if identity == nil {
		response.RespondError(c, apperr.AuthFailed(constants.MsgAuthFail))
		return
	}
	var req struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, bindingError(err, cartAddMessages, constants.MsgProductInvalid))
		return
	}
	if err := ch.cartService.Add(c.Request.Context(), identity.UserID, req.ProductID, req.Quantity); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": constants.MsgProductAdded})
}

func (ch *CartHandler) Details(c *gin.Context) {
	identity := requestdata.GetIdentity(c.Request.Context())
	if identity == nil {
		response.RespondError(c, apperr.AuthFailed(constants.MsgAuthFail))
		return
	}
	rows, err := ch.cartService.Details(c.Request.Context(), identity.UserID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"cart": rows})
}
