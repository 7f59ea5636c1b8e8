package apperr

import (
	"errors"
	"net/http"

	"github.com/dkanak/shopcart-backend/internal/constants"
)

// Kind tags an error with its place in the service taxonomy.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindAuthFailed         Kind = "auth_failed"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindInternal           Kind = "internal"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

func AuthFailed(message string) *Error {
	return &Error{Kind: KindAuthFailed, Status: http.StatusUnauthorized, Message: message}
}

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Status: http.StatusUnauthorized, Message: constants.MsgInvalidCred}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusConflict, Message: message}
}

// Internal wraps a collaborator failure. The underlying error stays
// available for logs via Unwrap; the message never leaks it.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: constants.MsgSomethingWrong, Err: err}
}

// StatusOf resolves the HTTP status for any error, defaulting to 500.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// MessageOf resolves the user-facing message for any error. Untagged
// errors collapse to the generic internal message.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return constants.MsgSomethingWrong
}

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
