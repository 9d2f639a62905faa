package errors

// ErrorCode represents a kind of failure.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// CodeNotFound indicates an expected filesystem entity, environment
	// variable or path component (filename, extension, parent) is absent.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeInvalidEncoding indicates bytes could not be interpreted as valid text.
	CodeInvalidEncoding ErrorCode = "INVALID_ENCODING"

	// CodeInvalidInput indicates a malformed argument detected before
	// delegating to the platform.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodePlatform indicates an opaque failure reported by the operating
	// system (permissions, missing file, I/O fault).
	CodePlatform ErrorCode = "PLATFORM_ERROR"

	// CodeAbnormalExit indicates a child process completed but signaled
	// failure, either through a non-zero exit code or a signal.
	CodeAbnormalExit ErrorCode = "ABNORMAL_EXIT"

	// CodeInternal indicates an internal error in this module.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an error that did not originate from this module.
	CodeUnknown ErrorCode = "UNKNOWN"
)
