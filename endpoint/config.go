package endpoint

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/kbukum/apiclient/errors"
	"github.com/kbukum/apiclient/httpclient"
)

// Method is an HTTP method an endpoint can be bound to.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// ParseMethod resolves a method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToUpper(strings.TrimSpace(s))); m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return m, nil
	default:
		return "", errors.InvalidArgument("method", "unsupported HTTP method: "+s)
	}
}

// HasBody reports whether the positional argument of a call is sent as the body.
func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}

// PreRequest runs before anything is sent. Returning false vetoes the request.
type PreRequest func(ctx context.Context, data *RequestData) bool

// OnThen observes a successful response.
type OnThen func(ctx context.Context, data *RequestData, resp *httpclient.Response)

// OnCatch observes a failed request. It is not called for cancellations.
type OnCatch func(ctx context.Context, data *RequestData, err error)

// DataSerializer turns request data into a transport body.
type DataSerializer func(data any) (any, error)

// ParamsSerializer turns request params into a query.
type ParamsSerializer func(params any) (url.Values, error)

// Handler groups the three lifecycle hooks.
type Handler struct {
	PreRequest PreRequest
	OnThen     OnThen
	OnCatch    OnCatch
}

// Options are the fields shared by client and endpoint configuration.
// A nil (or empty string) field is absent and falls back to the client value.
type Options struct {
	BaseURL          string
	Headers          map[string]string
	Timeout          *time.Duration
	Auth             *httpclient.AuthConfig
	DataSerializer   DataSerializer
	ParamsSerializer ParamsSerializer
	PreRequest       PreRequest
	OnThen           OnThen
	OnCatch          OnCatch

	// ExtractData returns only the response payload. Nil means true.
	ExtractData *bool
	// ExtractCatchData fails with a *PayloadError carrying the error
	// response payload. Nil means false.
	ExtractCatchData *bool
}

// EndpointConfig describes one endpoint.
type EndpointConfig struct {
	URL    string
	Method Method
	Options
}

// ClientConfig holds client-wide defaults plus hooks that only apply to
// endpoints of the matching method.
type ClientConfig struct {
	Options

	OnGet    *Handler
	OnPost   *Handler
	OnPut    *Handler
	OnPatch  *Handler
	OnDelete *Handler
}

// RequestConfig is the merged configuration an endpoint executes with.
type RequestConfig struct {
	URL    string
	Method Method
	Options

	OnGet    *Handler
	OnPost   *Handler
	OnPut    *Handler
	OnPatch  *Handler
	OnDelete *Handler
}

// RequestData is what one invocation carries. Hooks receive it by pointer.
type RequestData struct {
	PathVariables any
	Params        any
	Data          any
	// Attach carries caller context for hooks, e.g. UI state for a
	// confirmation prompt in PreRequest.
	Attach any
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Duration returns a pointer to d.
func Duration(d time.Duration) *time.Duration { return &d }

func extractData(o Options) bool      { return o.ExtractData == nil || *o.ExtractData }
func extractCatchData(o Options) bool { return o.ExtractCatchData != nil && *o.ExtractCatchData }
