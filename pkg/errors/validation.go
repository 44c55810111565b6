package errors

import "errors"

// ValidationError represents an error caused by invalid user input.
// It includes the field name, the offending value, and the underlying
// error message. The invalid mode token from the command line surfaces
// through this type so callers can show the value back to the user.
type ValidationError struct {
	Value any    // The actual value that failed validation.
	Field string // Name of the field that caused the validation error.
	Err   error  // The underlying error describing the validation issue.
}

// NewValidationError creates a new ValidationError instance.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{
		Err:   err,
		Field: field,
		Value: value,
	}
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "validation error"
}

// IsValidationError checks if a given error is of type ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError attempts to extract a ValidationError from a given error.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
