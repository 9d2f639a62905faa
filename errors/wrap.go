package errors

import "fmt"

// Wrap adds a layer with an explicit code over err.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is
// and errors.As.
//
// Use Wrap when the layer reclassifies the failure, for example when a raw
// utf8 check fails and the root should read as CodeInvalidEncoding. Use
// Context to add a layer that keeps the code of err.
//
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) Annotated {
	if err == nil {
		return nil
	}

	return &annotatedError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf is Wrap with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Annotated {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}
