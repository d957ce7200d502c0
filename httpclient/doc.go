// Package httpclient is the HTTP transport used by endpoint clients.
//
// The Adapter resolves paths against a base URL, encodes bodies (JSON,
// strings, bytes, readers, FormBody and *MultipartBody), sends repeated query
// keys once per value, applies default and per-request headers and
// authentication, and classifies failures into *Error values. Status-code
// errors keep the full Response so callers can unwrap error payloads.
//
// # Basic Usage
//
//	adapter, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := adapter.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/users/123",
//	    Query:  url.Values{"expand": {"roles", "teams"}},
//	})
//
// # Transport Options
//
// Config.H2C switches to cleartext HTTP/2, Config.Cookies keeps a cookie jar
// between requests and Config.RequestIDHeader forwards the ID stored with
// WithRequestID.
package httpclient
