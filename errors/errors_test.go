package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinelUntouched(t *testing.T) {
	cause := stderrors.New("socket closed")
	wrapped := Wrap(ErrPaymentFailed, cause)

	assert.Nil(t, ErrPaymentFailed.Err)
	assert.Equal(t, ErrPaymentFailed.Code, wrapped.Code)
	assert.Equal(t, ErrPaymentFailed.Message, wrapped.Message)
	assert.ErrorIs(t, wrapped, ErrPaymentFailed)
	assert.ErrorIs(t, wrapped, cause)
}

func TestErrorMessageIncludesCause(t *testing.T) {
	wrapped := Wrap(ErrCheckoutFailed, stderrors.New("stripe is down"))
	assert.Equal(t, "checkout session failed: stripe is down", wrapped.Error())
}
