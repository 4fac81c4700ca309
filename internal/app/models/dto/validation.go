package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding/validation failure into an
// ErrorDetail. Field-level failures name the first offending field; anything
// else is reported as a malformed request.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldError := validationErrors[0]
		detail := NewErrorDetail(
			ErrorCodeValidationFailed,
			fmt.Sprintf("field '%s' failed on the '%s' rule", fieldError.Field(), fieldError.Tag()),
		)
		return detail.WithField(fieldError.Field())
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}
