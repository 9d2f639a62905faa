package errors

import (
	stderrors "errors"
)

// ErrUnsupported is the root cause for operations the host platform does
// not provide, such as reading a creation time on a filesystem without one.
// Re-exported from the standard library for convenience.
var ErrUnsupported = stderrors.ErrUnsupported

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // Handle missing file
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var pathErr *fs.PathError
//	if errors.As(err, &pathErr) {
//	    op := pathErr.Op
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not Annotated.
//
// The code is read from the outermost Annotated layer in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle not found
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var annotated Annotated
	if stderrors.As(err, &annotated) {
		return annotated.Code()
	}

	return CodeUnknown
}
