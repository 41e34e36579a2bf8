package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	err := NewAPIError(http.StatusConflict, "code taken")
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, "Conflict", err.ErrorType)
	assert.Equal(t, "409 Conflict: code taken", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address")
	assert.Equal(t, "validation error on field email: must be a valid email address", err.Error())
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("mark payment code as used: %w", ErrCodeAlreadyUsed)
	assert.True(t, errors.Is(wrapped, ErrCodeAlreadyUsed))
	assert.False(t, errors.Is(wrapped, ErrDuplicateReport))
}
