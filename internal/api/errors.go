package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/timekeeper/internal/api/shared"
	"github.com/phrazzld/timekeeper/internal/domain"
	"github.com/phrazzld/timekeeper/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Malformed or out-of-bounds input
	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, service.ErrInvalidStep),
		errors.Is(err, service.ErrUnsupportedOperation),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	// Well-formed input whose arithmetic cannot be carried out
	case errors.Is(err, domain.ErrOverflow),
		errors.Is(err, domain.ErrUnderflow),
		errors.Is(err, domain.ErrDivisionByZero):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid format"
	case errors.Is(err, domain.ErrOutOfRange):
		return "Value out of range"
	case errors.Is(err, service.ErrInvalidStep):
		return "Invalid step"
	case errors.Is(err, service.ErrUnsupportedOperation):
		return "Unsupported operation"
	case errors.Is(err, domain.ErrOverflow):
		return "Arithmetic overflow"
	case errors.Is(err, domain.ErrUnderflow):
		return "Arithmetic underflow"
	case errors.Is(err, domain.ErrDivisionByZero):
		return "Division by zero"
	default:
		return "An unexpected error occurred"
	}
}

// ClientErrorMessage builds the message sent for err. Client errors carry the
// error detail, which only ever echoes the caller's own input; server errors
// get the generic safe message.
func ClientErrorMessage(err error) string {
	msg := GetSafeErrorMessage(err)
	if MapErrorToStatusCode(err) >= http.StatusInternalServerError {
		return msg
	}
	return msg + ": " + err.Error()
}

// SanitizeValidationError turns validator failures into a short message naming
// the first offending field, e.g. "Invalid op: invalid value".
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	first := verrs[0]
	field := strings.ToLower(first.Field())
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(first.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too small"
	case "max":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
