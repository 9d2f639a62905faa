package errors

import (
	"fmt"
	"io"
)

// annotatedError is the concrete implementation of Annotated.
// It is private to enforce construction through package functions.
type annotatedError struct {
	code    ErrorCode
	message string
	fields  map[string]interface{}
	cause   error
}

// Error returns the flattened chain.
// Format: "message" or "message: <cause chain>" if a cause is present.
// A layer with an empty message is transparent and renders only its cause.
func (e *annotatedError) Error() string {
	switch {
	case e.cause == nil:
		return e.message
	case e.message == "":
		return causeText(e.cause)
	default:
		return e.message + ": " + causeText(e.cause)
	}
}

// Code returns the error code.
func (e *annotatedError) Code() ErrorCode {
	return e.code
}

// Message returns the text of this layer.
func (e *annotatedError) Message() string {
	return e.message
}

// Fields returns a copy of the fields attached to this layer.
// Returns nil if no fields have been attached (maintains immutability).
func (e *annotatedError) Fields() map[string]interface{} {
	return copyFields(e.fields)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *annotatedError) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter.
//
//	%s, %v  flattened chain, identical to Error()
//	%+v     verbose chain with a "Caused by:" section
//	%q      quoted flattened chain
func (e *annotatedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, Verbose(e))
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// causeText renders the cause of a layer. Annotated causes render their own
// chain; anything else is a root and is normalized.
func causeText(err error) string {
	if a, ok := err.(Annotated); ok {
		return a.Error()
	}
	return rootMessage(err)
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return nil
	}
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
