package rest

import (
	stderrors "errors"

	"github.com/kbukum/apiclient/endpoint"
	"github.com/kbukum/apiclient/httpclient"
)

// Re-exported error checkers so callers only need to import rest.
var (
	IsNotFound    = httpclient.IsNotFound
	IsAuth        = httpclient.IsAuth
	IsRateLimit   = httpclient.IsRateLimit
	IsServerError = httpclient.IsServerError
	IsRetryable   = httpclient.IsRetryable
	IsTimeout     = httpclient.IsTimeout
	IsCancel      = endpoint.IsCancel
)

// PayloadAs decodes the error payload carried by err into T. It reports
// false when err carries no payload or the payload does not fit T.
func PayloadAs[T any](err error) (T, bool) {
	var pe *endpoint.PayloadError
	if !stderrors.As(err, &pe) || pe.Payload == nil {
		var zero T
		return zero, false
	}
	v, decodeErr := Decode[T](pe.Payload)
	if decodeErr != nil {
		return v, false
	}
	return v, true
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var pe *endpoint.PayloadError
	if stderrors.As(err, &pe) {
		return pe.StatusCode
	}
	var he *httpclient.Error
	if stderrors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
