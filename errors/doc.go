// Package errors provides the annotated error chain shared by every package
// in this module.
//
// An annotated error is an ordered chain of context layers. The outermost
// layer names the most specific context (the path, command or environment
// variable being processed) and the innermost layer is the root cause, which
// is usually an unmodified error returned by the host platform. The package
// is compatible with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap): the root cause is never replaced, only
// decorated.
//
// # Error Codes
//
// Every annotated error carries a code from a small taxonomy:
//
//   - CodeNotFound: an expected file, variable or path component is absent
//   - CodeInvalidEncoding: bytes could not be interpreted as UTF-8 text
//   - CodeInvalidInput: a malformed argument was rejected before reaching the platform
//   - CodePlatform: an opaque failure reported by the operating system
//   - CodeAbnormalExit: a child process completed but signaled failure
//
// Context layers inherit the code of the error they wrap, so the code of the
// outermost layer always describes the root failure.
//
// # Creating and Annotating
//
//	// Absence turned into a failure
//	err := errors.New(errors.CodeNotFound, "missing expected filename")
//
//	// A context layer over a platform error
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Contextf(err, "while processing path %q", path)
//	}
//
// # Rendering
//
// The chain renders in two byte-stable forms. Error() (and %v, %s) flattens
// the layers onto one line:
//
//	while processing path "/etc/missing": no such file or directory
//
// The verbose form (%+v or Verbose) prints one layer per line:
//
//	while copying "/a" to "/b"
//
//	Caused by:
//	    0: with prefix "/x"
//	    1: no such file or directory
//
// Platform errors such as *fs.PathError already embed the path in their text.
// The root layer renders only the underlying cause, because the context layer
// above it already names the resource.
//
// # Structured Fields
//
// Layers may carry structured fields (for example "path" or "command") that
// are exposed through Fields and included in the JSON form produced by
// ToJSON.
package errors
