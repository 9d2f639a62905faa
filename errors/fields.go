package errors

// WithField adds a single field to the outermost layer of err.
// Returns a new Annotated with the field added; existing fields are preserved.
//
// If err is not Annotated, a transparent layer with CodePlatform is added to
// hold the field. A transparent layer does not change the rendered text.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithField(err, "path", "/etc/hosts")
func WithField(err error, key string, value interface{}) Annotated {
	return WithFields(err, map[string]interface{}{key: value})
}

// WithFields adds multiple fields to the outermost layer of err.
// New fields override existing ones with the same key.
//
// If err is not Annotated, a transparent layer with CodePlatform is added to
// hold the fields. Returns nil if err is nil.
func WithFields(err error, fields map[string]interface{}) Annotated {
	if err == nil {
		return nil
	}

	layer, ok := err.(*annotatedError)
	if !ok {
		return &annotatedError{
			code:   inheritCode(err),
			fields: copyFields(fields),
			cause:  err,
		}
	}

	merged := make(map[string]interface{}, len(layer.fields)+len(fields))
	for k, v := range layer.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return &annotatedError{
		code:    layer.code,
		message: layer.message,
		fields:  merged,
		cause:   layer.cause,
	}
}

// AllFields merges the fields of every Annotated layer in the chain.
// Outer layers override inner layers with the same key.
// Returns nil if no layer carries fields.
func AllFields(err error) map[string]interface{} {
	var layers []Annotated
	for err != nil {
		annotated, ok := err.(Annotated)
		if !ok {
			break
		}
		layers = append(layers, annotated)
		err = annotated.Unwrap()
	}

	var merged map[string]interface{}
	for i := len(layers) - 1; i >= 0; i-- {
		for k, v := range layers[i].Fields() {
			if merged == nil {
				merged = make(map[string]interface{})
			}
			merged[k] = v
		}
	}
	return merged
}
