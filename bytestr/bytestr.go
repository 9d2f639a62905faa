// Package bytestr converts raw platform byte strings into text, naming the
// offending value when the bytes are not valid UTF-8.
package bytestr

import (
	"unicode/utf8"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/jmgilman/go/annotate/internal/display"
)

// ToString returns b as a string if it is valid UTF-8.
//
// On failure the context layer shows a lossy, truncated rendering of b:
//
//	while processing os string "invalid � utf8": not valid utf8
func ToString(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	lossy := display.Lossy(b)
	return "", errors.ContextWithFields(
		errors.New(errors.CodeInvalidEncoding, "not valid utf8"),
		"while processing os string "+display.Quote(display.Truncate(lossy)),
		map[string]interface{}{"value": lossy},
	)
}
