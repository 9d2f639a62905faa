package errors

import "fmt"

// New creates a root error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "missing expected filename")
func New(code ErrorCode, message string) Annotated {
	return &annotatedError{
		code:    code,
		message: message,
	}
}

// Newf creates a root error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "environment variable contains %q", '=')
func Newf(code ErrorCode, format string, args ...interface{}) Annotated {
	return &annotatedError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
