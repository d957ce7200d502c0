package rest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbukum/apiclient/endpoint"
	"github.com/kbukum/apiclient/httpclient"
)

// Response wraps a typed response.
type Response[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Data is the decoded response body.
	Data T
}

// Fetch sends req and decodes the result into T.
func Fetch[T any](ctx context.Context, req *endpoint.Request) (T, error) {
	v, err := req.Fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](v)
}

// Call invokes ep and decodes the result into T.
func Call[T any](ctx context.Context, ep *endpoint.Endpoint, paramsOrData any, data *endpoint.RequestData) (T, error) {
	v, err := ep.Call(ctx, paramsOrData, data)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](v)
}

// FetchResponse sends req and keeps the status and headers. The endpoint must
// be declared with ExtractData disabled.
func FetchResponse[T any](ctx context.Context, req *endpoint.Request) (*Response[T], error) {
	v, err := req.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	resp, ok := v.(*httpclient.Response)
	if !ok {
		return nil, fmt.Errorf("rest: expected *httpclient.Response, got %T (is extract data disabled?)", v)
	}
	out := &Response[T]{StatusCode: resp.StatusCode, Headers: resp.Headers}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &out.Data); err != nil {
			return nil, fmt.Errorf("rest: decode response: %w", err)
		}
	}
	return out, nil
}

// Decode converts an endpoint result into T. A value already of type T is
// returned as is; a *httpclient.Response is decoded from its body; anything
// else is re-encoded through JSON.
func Decode[T any](v any) (T, error) {
	var out T
	if v == nil {
		return out, nil
	}
	if t, ok := v.(T); ok {
		return t, nil
	}

	var raw []byte
	switch x := v.(type) {
	case *httpclient.Response:
		raw = x.Body
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return out, fmt.Errorf("rest: encode payload: %w", err)
		}
		raw = b
	}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("rest: decode payload into %T: %w", out, err)
	}
	return out, nil
}
