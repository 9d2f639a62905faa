package errors

import (
	"io/fs"
	"os"
	osexec "os/exec"
	"strconv"
	"strings"
)

// Chain returns the text of each layer of err, outermost first.
//
// Annotated layers contribute their message; transparent layers (empty
// message) are skipped. The first non-Annotated error ends the chain and
// contributes its normalized text. Returns nil if err is nil.
//
// Example:
//
//	errors.Chain(err)
//	// ["while processing path \"/foo/..\"", "missing expected filename"]
func Chain(err error) []string {
	var layers []string
	for err != nil {
		annotated, ok := err.(Annotated)
		if !ok {
			layers = append(layers, rootMessage(err))
			break
		}
		if msg := annotated.Message(); msg != "" {
			layers = append(layers, msg)
		}
		err = annotated.Unwrap()
	}
	return layers
}

// Verbose renders err as a multi-line chain: the outermost layer, a blank
// line, then a "Caused by:" section listing the remaining layers indented by
// four spaces. When more than one cause is present each is prefixed with its
// index. Returns an empty string if err is nil.
//
// Verbose is also available through the %+v verb on any Annotated error.
func Verbose(err error) string {
	layers := Chain(err)
	if len(layers) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(layers[0])

	causes := layers[1:]
	if len(causes) == 0 {
		return b.String()
	}

	b.WriteString("\n\nCaused by:")
	for i, cause := range causes {
		b.WriteString("\n    ")
		if len(causes) > 1 {
			b.WriteString(strconv.Itoa(i))
			b.WriteString(": ")
		}
		b.WriteString(cause)
	}
	return b.String()
}

// rootMessage normalizes a platform error into its detail text.
//
// Platform errors like *fs.PathError repeat the operation and path that the
// enclosing context layer already names, so only the underlying cause is
// rendered. The error itself stays in the chain untouched.
func rootMessage(err error) string {
	switch e := err.(type) {
	case *fs.PathError:
		if e.Err != nil {
			return rootMessage(e.Err)
		}
	case *os.LinkError:
		if e.Err != nil {
			return rootMessage(e.Err)
		}
	case *os.SyscallError:
		if e.Err != nil {
			return rootMessage(e.Err)
		}
	case *osexec.Error:
		if e.Err != nil {
			return rootMessage(e.Err)
		}
	}
	return err.Error()
}
