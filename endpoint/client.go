package endpoint

import (
	"context"

	"github.com/kbukum/apiclient/logger"
	"github.com/kbukum/apiclient/observability"
	"github.com/kbukum/apiclient/validation"
)

const defaultClientName = "apiclient"

// Client declares endpoints that share a transport and default configuration.
type Client struct {
	name      string
	transport Transport
	config    ClientConfig
	log       *logger.Logger
	metrics   *observability.Metrics
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithName sets the name used in logs, spans and metrics.
func WithName(name string) ClientOption {
	return func(c *Client) { c.name = name }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// WithMetrics records every invocation on m.
func WithMetrics(m *observability.Metrics) ClientOption {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a Client. cfg is copied; later changes to it have no effect.
func NewClient(transport Transport, cfg ClientConfig, opts ...ClientOption) *Client {
	c := &Client{
		name:      defaultClientName,
		transport: transport,
		config:    cfg,
		log:       logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("endpoint")
	return c
}

// WithConfig returns a Client sharing this one's transport, logger and
// metrics but using cfg as defaults. Endpoints already declared keep theirs.
func (c *Client) WithConfig(cfg ClientConfig) *Client {
	next := *c
	next.config = cfg
	return &next
}

// Config returns a copy of the client defaults.
func (c *Client) Config() ClientConfig {
	return c.config
}

// Request declares an endpoint for any supported method.
func (c *Client) Request(cfg EndpointConfig) (*Endpoint, error) {
	method, err := ParseMethod(string(cfg.Method))
	if err != nil {
		return nil, err
	}
	cfg.Method = method
	return c.bind(cfg), nil
}

// Get declares a GET endpoint. cfg may be nil.
func (c *Client) Get(url string, cfg *EndpointConfig) *Endpoint {
	return c.verb(MethodGet, url, cfg, nil)
}

// Post declares a POST endpoint with a JSON body.
func (c *Client) Post(url string, cfg *EndpointConfig) *Endpoint {
	return c.verb(MethodPost, url, cfg, nil)
}

// PostForm declares a POST endpoint sending application/x-www-form-urlencoded data.
func (c *Client) PostForm(url string, cfg *EndpointConfig) *Endpoint {
	return c.verb(MethodPost, url, cfg, URLEncoded)
}

// PostFormData declares a POST endpoint sending multipart/form-data.
func (c *Client) PostFormData(url string, cfg *EndpointConfig) *Endpoint {
	return c.verb(MethodPost, url, cfg, Multipart)
}

// Put declares a PUT endpoint.
func (c *Client) Put(url string, cfg *EndpointConfig) *Endpoint {
	return c.verb(MethodPut, url, cfg, nil)
}

// Patch declares a PATCH endpoint.
func (c *Client) Patch(url string, cfg *EndpointConfig) *Endpoint {
	return c.verb(MethodPatch, url, cfg, nil)
}

// Delete declares a DELETE endpoint.
func (c *Client) Delete(url string, cfg *EndpointConfig) *Endpoint {
	return c.verb(MethodDelete, url, cfg, nil)
}

func (c *Client) verb(method Method, url string, cfg *EndpointConfig, serializer DataSerializer) *Endpoint {
	var ec EndpointConfig
	if cfg != nil {
		ec = *cfg
	}
	ec.URL = url
	ec.Method = method
	if serializer != nil {
		ec.DataSerializer = serializer
	}
	return c.bind(ec)
}

func (c *Client) bind(ec EndpointConfig) *Endpoint {
	return &Endpoint{exec: &executor{
		client:    c.name,
		config:    MergeConfig(&c.config, &ec),
		transport: c.transport,
		log:       c.log,
		metrics:   c.metrics,
	}}
}

// Endpoint is a declared endpoint. It is safe for concurrent use.
type Endpoint struct {
	exec *executor
}

// CallFunc invokes an endpoint. paramsOrData becomes the body for POST, PUT
// and PATCH and the query otherwise; data supplies the remaining fields.
type CallFunc func(ctx context.Context, paramsOrData any, data *RequestData) (any, error)

// Config returns the merged configuration the endpoint executes with.
func (e *Endpoint) Config() RequestConfig {
	return e.exec.config
}

// New starts a fluent request.
func (e *Endpoint) New() *Request {
	return &Request{exec: e.exec}
}

// Call invokes the endpoint. data is copied, never modified.
func (e *Endpoint) Call(ctx context.Context, paramsOrData any, data *RequestData) (any, error) {
	var rd RequestData
	if data != nil {
		rd = *data
	}
	if !validation.IsNil(paramsOrData) {
		if e.exec.config.Method.HasBody() {
			rd.Data = paramsOrData
		} else {
			rd.Params = paramsOrData
		}
	}
	return e.exec.execute(ctx, &rd, Handler{})
}

// Func returns Call as a function value.
func (e *Endpoint) Func() CallFunc {
	return e.Call
}
