package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Caller input errors
const (
	// ErrCodeInvalidArgument indicates a value failed an argument assertion.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidType indicates a value has a type the operation cannot handle.
	ErrCodeInvalidType ErrorCode = "INVALID_TYPE"
	// ErrCodeInvalidConfig indicates a configuration value is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Lifecycle errors
const (
	// ErrCodeCanceled indicates a request was vetoed before it was sent.
	ErrCodeCanceled ErrorCode = "CANCELED"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string { return string(c) }
