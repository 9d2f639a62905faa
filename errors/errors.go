package errors

// Annotated extends the standard error interface with a code and the
// context layer it represents.
//
// An Annotated error is one layer of a chain. Message returns only this
// layer's text; Error returns the flattened chain.
type Annotated interface {
	error

	// Code returns the error code identifying the kind of failure.
	Code() ErrorCode

	// Message returns the text of this layer alone.
	Message() string

	// Fields returns the structured fields attached to this layer as a
	// read-only copy. Returns nil if no fields have been attached.
	Fields() map[string]interface{}

	// Unwrap returns the next layer of the chain, or nil for the root.
	Unwrap() error
}
