package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type for failures raised by this module.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// InvalidArgument creates an ArgumentError. An empty message falls back to
// a generic one naming the failed predicate.
func InvalidArgument(predicate, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("argument failed %s", predicate)
	}
	return &AppError{
		Code:    ErrCodeInvalidArgument,
		Message: message,
		Details: map[string]any{"predicate": predicate},
	}
}

// InvalidType creates a TypeError for a value of an unexpected type.
func InvalidType(expected, actual string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidType,
		Message: fmt.Sprintf("Expect: '%s' type, Actual: '%s' type", expected, actual),
		Details: map[string]any{"expected": expected, "actual": actual},
	}
}

// InvalidConfig creates an error for a configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// Canceled creates a CancellationError for a request vetoed before sending.
func Canceled(method, url string) *AppError {
	return &AppError{
		Code:    ErrCodeCanceled,
		Message: fmt.Sprintf("Cancel Request: %s %s", method, url),
		Details: map[string]any{"method": method, "url": url},
	}
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsInvalidArgument reports whether err is an ArgumentError.
func IsInvalidArgument(err error) bool { return HasCode(err, ErrCodeInvalidArgument) }

// IsInvalidType reports whether err is a TypeError.
func IsInvalidType(err error) bool { return HasCode(err, ErrCodeInvalidType) }

// IsCanceled reports whether err is a vetoed-request CancellationError.
func IsCanceled(err error) bool { return HasCode(err, ErrCodeCanceled) }
