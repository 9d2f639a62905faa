package errors

import "fmt"

// Context adds a context layer over err.
//
// The new layer inherits the code of err if err is Annotated, otherwise err
// is treated as an opaque platform failure and the layer gets CodePlatform.
//
// Returns nil if err is nil.
//
// Example:
//
//	info, err := os.Stat(path)
//	if err != nil {
//	    return errors.Context(err, "while processing path \"/etc/hosts\"")
//	}
func Context(err error, message string) Annotated {
	return ContextWithFields(err, message, nil)
}

// Contextf is Context with a formatted message.
//
// Returns nil if err is nil.
func Contextf(err error, format string, args ...interface{}) Annotated {
	if err == nil {
		return nil
	}

	return ContextWithFields(err, fmt.Sprintf(format, args...), nil)
}

// ContextWithFields adds a context layer and attaches fields in a single
// operation. The fields map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.ContextWithFields(err, "while processing path \"/tmp\"", map[string]interface{}{
//	    "path": "/tmp",
//	})
func ContextWithFields(err error, message string, fields map[string]interface{}) Annotated {
	if err == nil {
		return nil
	}

	return &annotatedError{
		code:    inheritCode(err),
		message: message,
		fields:  copyFields(fields),
		cause:   err,
	}
}

// inheritCode returns the code a new layer over err should carry.
func inheritCode(err error) ErrorCode {
	var annotated Annotated
	if As(err, &annotated) {
		return annotated.Code()
	}
	return CodePlatform
}
