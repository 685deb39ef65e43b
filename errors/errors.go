package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for the failure kinds calculations can produce.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidType     = errors.New("invalid type")
	ErrInvalidValue    = errors.New("invalid value")
)

// AppError represents a structured calculation error.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// MissingArgument creates an error for a required argument that was not provided.
func MissingArgument(message string) *AppError {
	return &AppError{
		Code:    "MISSING_ARGUMENT",
		Message: message,
		Err:     ErrMissingArgument,
	}
}

// InvalidType creates an error for an argument that is not a usable number
// or an input that is not the expected shape.
func InvalidType(message string) *AppError {
	return &AppError{
		Code:    "INVALID_TYPE",
		Message: message,
		Err:     ErrInvalidType,
	}
}

// InvalidValue creates an error for a numeric argument that violates a
// domain constraint.
func InvalidValue(message string) *AppError {
	return &AppError{
		Code:    "INVALID_VALUE",
		Message: message,
		Err:     ErrInvalidValue,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Code returns the machine-readable code for the given error, or an empty
// string if the error is not an AppError.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
