package dto

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// APIResponse is the standard envelope for API endpoints. Success responses
// carry Data; failures carry Error.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp,omitempty"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// HandleValidationError converts a binding/validation error into an
// ErrorDetail suitable for the standard error envelope.
func HandleValidationError(err error) *ErrorDetail {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format")
	}

	// Report the first failed field; clients fix one at a time anyway
	fieldErr := validationErrors[0]
	detail := NewErrorDetail(ErrorCodeValidationFailed, validationMessage(fieldErr))
	return detail.WithField(fieldErr.Field())
}

// validationMessage builds a human-readable message for a failed rule
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "junioremail":
		return fmt.Sprintf("%s must be a junior college email address", fe.Field())
	case "senioremail":
		return fmt.Sprintf("%s must be a senior college email address", fe.Field())
	case "phonedigits":
		return fmt.Sprintf("%s must be exactly 10 digits", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on rule '%s'", fe.Field(), fe.Tag())
	}
}
