package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dkanak/shopcart-backend/internal/apperr"
	"github.com/dkanak/shopcart-backend/internal/constants"
	"github.com/dkanak/shopcart-backend/internal/logger"
	"github.com/dkanak/shopcart-backend/internal/requestdata"
	"github.com/dkanak/shopcart-backend/internal/response"
	"github.com/dkanak/shopcart-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

// RequireAuth gates a route behind a bearer credential: the token is
// verified, the caller's identity resolved and attached to the request
// context. Routes without the middleware are public.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			response.AbortError(c, err)
			return
		}
		identity, err := am.authService.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			am.log.Debug("Token verification rejected", "error", err)
			response.AbortError(c, err)
			return
		}
		ctx := requestdata.WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", apperr.AuthFailed(constants.MsgAuthFail)
	}
	scheme, credential, found := strings.Cut(authHeader, " ")
	if !found || scheme != "Bearer" || strings.TrimSpace(credential) == "" {
		return "", apperr.AuthFailed(constants.MsgAuthFail)
	}
	return strings.TrimSpace(credential), nil
}
