package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error with an HTTP status code and a
// client-safe message. The wrapped error is logged but never serialized.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any wrapped copy of a sentinel by code and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of base carrying err as the cause. Sentinels stay
// untouched so concurrent requests never share mutable error state.
func Wrap(base *Error, err error) *Error {
	return New(base.Code, base.Message, err)
}

// Spec'd error taxonomy: MissingParameter -> 400, Conflict -> 409,
// upstream/processor failures -> 500 with a generic message.
var (
	ErrMissingParameter = New(http.StatusBadRequest, "missing required parameter", nil)
	ErrInvalidInput     = New(http.StatusBadRequest, "invalid input", nil)
	ErrNotFound         = New(http.StatusNotFound, "not found", nil)
	ErrConflict         = New(http.StatusConflict, "conflict", nil)
	ErrCheckoutFailed   = New(http.StatusInternalServerError, "checkout session failed", nil)
	ErrPaymentFailed    = New(http.StatusInternalServerError, "payment failed", nil)
	ErrInternalServer   = New(http.StatusInternalServerError, "internal server error", nil)
)

// Respond writes err as a JSON error response. Unknown error types collapse
// to a generic 500 so no upstream detail leaks to clients.
func Respond(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = Wrap(ErrInternalServer, err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
