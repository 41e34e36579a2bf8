package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	ErrorType  string `json:"error"`
}

func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		ErrorType:  http.StatusText(statusCode),
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.ErrorType, e.Message)
}

// Common API Errors
var (
	ErrBadRequest         = NewAPIError(http.StatusBadRequest, "Invalid request")
	ErrUnauthorized       = NewAPIError(http.StatusUnauthorized, "Unauthorized access")
	ErrForbidden          = NewAPIError(http.StatusForbidden, "Access forbidden")
	ErrNotFound           = NewAPIError(http.StatusNotFound, "Resource not found")
	ErrConflict           = NewAPIError(http.StatusConflict, "Resource conflict")
	ErrInternalServer     = NewAPIError(http.StatusInternalServerError, "Internal server error")
	ErrServiceUnavailable = NewAPIError(http.StatusServiceUnavailable, "Service temporarily unavailable")
)

// Repository sentinels. Point lookups signal absence with a nil result, so
// these cover the conflict cases a nil cannot express.
var (
	// ErrCodeAlreadyUsed reports a redemption attempt on a payment code that
	// was already marked used. Distinct from not-found: the code exists.
	ErrCodeAlreadyUsed = errors.New("payment code already used")

	// ErrDuplicateReport reports an insert for a (month, year) period that
	// already has a monthly report.
	ErrDuplicateReport = errors.New("monthly report for period already exists")
)

// Validation Errors
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}
