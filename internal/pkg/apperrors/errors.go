package apperrors

import "errors"

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Storage errors
var (
	// ErrStorageFailure wraps any failure coming out of the persistence
	// layer: IO errors, constraint violations, malformed queries.
	ErrStorageFailure = errors.New("storage operation failed")
)

// Lookup errors. A search that matches nothing is a normal outcome for the
// caller; these sentinels only exist so the HTTP layer can answer 404.
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrCourseNotFound  = errors.New("course not found")
)

// Export errors
var (
	ErrExportFailed = errors.New("report export failed")
)

// NewValidationError creates a validation error naming the offending field.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewStorageError wraps a driver-level error so callers can match on
// ErrStorageFailure while keeping the original cause in the chain.
func NewStorageError(cause error, message string) error {
	return &CustomError{
		Err:     ErrStorageFailure,
		Cause:   cause,
		Message: message,
	}
}

// NewExportError wraps a failure from the report export facility.
func NewExportError(cause error, message string) error {
	return &CustomError{
		Err:     ErrExportFailed,
		Cause:   cause,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Cause   error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the sentinel and the underlying cause, so callers can
// match either with errors.Is.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
