package httpclient

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL if BaseURL is empty.
	Path string
	// BaseURL overrides the client's BaseURL for this request.
	BaseURL string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query are URL query parameters. Repeated keys are sent once per value.
	Query url.Values
	// Body is the request body. Accepts io.Reader, []byte, string, FormBody,
	// *MultipartBody, or any value that will be JSON-encoded.
	Body any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
	// Timeout overrides the client timeout for this request.
	Timeout *time.Duration
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// IsJSON reports whether the response declares a JSON content type.
func (r *Response) IsJSON() bool {
	for k, v := range r.Headers {
		if strings.EqualFold(k, "Content-Type") {
			return strings.Contains(v, "json")
		}
	}
	return false
}

// FormBody is an already URL-encoded form, sent as application/x-www-form-urlencoded.
type FormBody string

type requestIDKey struct{}

// WithRequestID stores a request ID that the adapter forwards when
// Config.RequestIDHeader is set.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}
