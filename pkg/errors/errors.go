package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the failures a pipeline run can hit. The
// category maps one-to-one onto the tool's error taxonomy: storage for
// file I/O, encoding for malformed Base64 text, compression for a bad
// compressed container.
type ErrorCategory int

const (
	// ErrorStorage indicates errors in underlying file operations such as
	// a missing input file, permission problems or a full disk.
	ErrorStorage ErrorCategory = iota + 1

	// ErrorEncoding indicates malformed Base64 text on the decode path:
	// characters outside the alphabet, bad length or bad padding.
	ErrorEncoding

	// ErrorCompression indicates a malformed compressed container on
	// decompression, or a failure while producing one.
	ErrorCompression
)

// String returns the string representation of the error category.
// This is used in diagnostics and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorStorage:
		return "storage"
	case ErrorEncoding:
		return "encoding"
	case ErrorCompression:
		return "compression"
	default:
		return "unknown"
	}
}

// ToolError is the terminal error of a pipeline run. It carries the
// failing operation and the time of occurrence alongside the cause.
type ToolError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// New wraps err as a ToolError stamped with the current time.
func New(category ErrorCategory, operation string, err error) *ToolError {
	return &ToolError{
		Err:       err,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Is reports whether err carries a ToolError of the given category.
func Is(err error, category ErrorCategory) bool {
	if te := AsToolError(err); te != nil {
		return te.Category == category
	}
	return false
}

// AsToolError attempts to extract a ToolError from a given error.
func AsToolError(err error) *ToolError {
	var te *ToolError
	if errors.As(err, &te) {
		return te
	}
	return nil
}
