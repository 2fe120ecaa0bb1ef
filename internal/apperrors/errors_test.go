package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("saving transaction: %w", NewAppError(500, "failed to begin transaction", cause))

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "saving transaction: failed to begin transaction: connection refused", err.Error())

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)
}

func TestAppErrorClientCodeIsNotInternal(t *testing.T) {
	err := NewAppError(400, "invalid nextToken", nil)
	assert.False(t, errors.Is(err, ErrInternal))
	assert.Equal(t, "invalid nextToken", err.Error())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("bank account acc-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "bank account acc-1")
}
