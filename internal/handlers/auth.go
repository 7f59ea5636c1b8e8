package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dkanak/shopcart-backend/internal/constants"
	"github.com/dkanak/shopcart-backend/internal/response"
	"github.com/dkanak/shopcart-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

var registrationMessages = map[string]string{
	"name":     constants.MsgNameRequired,
	"email":    constants.MsgEmailRequired,
	"password": constants.MsgPasswordRequired,
}

var loginMessages = map[string]string{
	"email":    constants.MsgEmailRequired,
	"password": constants.MsgPasswordRequired,
}

func (ah *AuthHandler) Registration(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,min=2,max=30"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, bindingError(err, registrationMessages, constants.MsgNameRequired))
		return
	}
	id, err := ah.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message": constants.MsgUserAdded,
		"id":      id,
	})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, bindingError(err, loginMessages, constants.MsgEmailRequired))
		return
	}
	tok, user, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message": constants.MsgUserLogin,
		"user": gin.H{
			"token": tok,
			"name":  user.Name,
			"id":    user.ID,
		},
	})
}
