package endpoint

import (
	"context"

	"github.com/kbukum/apiclient/validation"
)

// Request builds one invocation of an endpoint. Setters return the same
// Request for chaining. Create a new Request per logical call; a Request is
// not safe for concurrent use.
type Request struct {
	exec  *executor
	data  RequestData
	hooks Handler
	err   error
}

// PathVariables sets the values substituted into the URL template.
func (r *Request) PathVariables(v any) *Request {
	return r.set(&r.data.PathVariables, v, "Path variables must be object type")
}

// Params sets the query parameters.
func (r *Request) Params(v any) *Request {
	return r.set(&r.data.Params, v, "Params must be object type")
}

// Data sets the request body.
func (r *Request) Data(v any) *Request {
	return r.set(&r.data.Data, v, "Data must be object type")
}

// Attach sets caller context visible to hooks.
func (r *Request) Attach(v any) *Request {
	return r.set(&r.data.Attach, v, "Attach must be object type")
}

// PreRequest replaces the endpoint's PreRequest hook for this request.
func (r *Request) PreRequest(fn PreRequest) *Request {
	r.hooks.PreRequest = fn
	return r
}

// OnThen replaces the endpoint's OnThen hook for this request.
func (r *Request) OnThen(fn OnThen) *Request {
	r.hooks.OnThen = fn
	return r
}

// OnCatch replaces the endpoint's OnCatch hook for this request.
func (r *Request) OnCatch(fn OnCatch) *Request {
	r.hooks.OnCatch = fn
	return r
}

// Err returns the first setter error, if any.
func (r *Request) Err() error {
	return r.err
}

// Fetch sends the request. A setter error is returned before any hook runs.
func (r *Request) Fetch(ctx context.Context) (any, error) {
	if r.err != nil {
		return nil, r.err
	}
	data := r.data
	return r.exec.execute(ctx, &data, r.hooks)
}

// FetchByPathVariables sets path variables and fetches.
func (r *Request) FetchByPathVariables(ctx context.Context, v any) (any, error) {
	return r.PathVariables(v).Fetch(ctx)
}

// FetchByParams sets params and fetches.
func (r *Request) FetchByParams(ctx context.Context, v any) (any, error) {
	return r.Params(v).Fetch(ctx)
}

// FetchByData sets the body and fetches.
func (r *Request) FetchByData(ctx context.Context, v any) (any, error) {
	return r.Data(v).Fetch(ctx)
}

func (r *Request) set(dst *any, v any, msg string) *Request {
	if err := validation.MustObject(v, msg); err != nil {
		if r.err == nil {
			r.err = err
		}
		return r
	}
	*dst = v
	return r
}
