package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure of an annotated error.
// It is the structured kind+detail form of a chain: the code names the kind,
// the chain lists each layer and the fields carry the descriptors.
type ErrorResponse struct {
	// Code is the error code identifying the kind of failure.
	Code string `json:"code"`

	// Message is the flattened chain.
	Message string `json:"message"`

	// Chain lists the text of each layer, outermost first.
	Chain []string `json:"chain"`

	// Fields contains the merged structured fields of the chain.
	// Omitted from JSON if empty.
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For Annotated errors, the code and fields are extracted from the chain.
// For standard errors, CodeUnknown is used and the chain holds the
// normalized error text.
//
// Example:
//
//	if err := run(); err != nil {
//	    _ = json.NewEncoder(os.Stderr).Encode(errors.ToJSON(err))
//	}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	return &ErrorResponse{
		Code:    string(GetCode(err)),
		Message: err.Error(),
		Chain:   Chain(err),
		Fields:  AllFields(err),
	}
}

// MarshalJSON implements json.Marshaler for annotatedError.
// This allows Annotated errors to be marshaled directly using json.Marshal
// without needing to call ToJSON explicitly.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "environment variable not found")
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"code":"NOT_FOUND","message":"environment variable not found","chain":["environment variable not found"]}
func (e *annotatedError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		// Fields may hold values encoding/json cannot represent.
		return nil, &annotatedError{
			code:    CodeInternal,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
