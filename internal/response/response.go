package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkanak/shopcart-backend/internal/apperr"
)

type APIError struct {
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError translates any error into the uniform envelope, taking
// status and message from its apperr tag. Untagged errors surface as a
// generic 500.
func RespondError(c *gin.Context, err error) {
	c.JSON(apperr.StatusOf(err), ErrorEnvelope{
		Error: APIError{Message: apperr.MessageOf(err)},
	})
}

// AbortError is RespondError for middleware: it also stops the chain.
func AbortError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.StatusOf(err), ErrorEnvelope{
		Error: APIError{Message: apperr.MessageOf(err)},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
