// Package paths extracts components from filesystem paths and fails with a
// descriptive, annotated error when the requested component is absent.
//
// The functions are pure string manipulation; none of them touches the
// filesystem. Every failure carries the layer
//
//	while processing path "<path>"
//
// over a CodeNotFound (or CodeInvalidEncoding) root, so a caller can simply
// return the error:
//
//	name, err := paths.FileName("/foo/..")
//	// err: while processing path "/foo/..": missing expected filename
//
// Paths are split into components the way the host platform does it:
// repeated separators and interior "." segments are ignored, a leading
// separator marks the path as rooted, and ".." is kept as a literal
// component.
package paths
