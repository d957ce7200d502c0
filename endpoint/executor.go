package endpoint

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/apiclient/errors"
	"github.com/kbukum/apiclient/httpclient"
	"github.com/kbukum/apiclient/logger"
	"github.com/kbukum/apiclient/observability"
	"github.com/kbukum/apiclient/validation"
)

// Transport sends a resolved request. *httpclient.Adapter implements it.
type Transport interface {
	Do(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)

func (f TransportFunc) Do(ctx context.Context, req httpclient.Request) (*httpclient.Response, error) {
	return f(ctx, req)
}

// executor runs invocations of one endpoint. Its config is read-only.
type executor struct {
	client    string
	config    RequestConfig
	transport Transport
	log       *logger.Logger
	metrics   *observability.Metrics
}

// execute runs one invocation. Non-nil hooks in override replace the
// configured ones for this call only.
func (e *executor) execute(ctx context.Context, data *RequestData, override Handler) (any, error) {
	cfg := e.config
	if override.PreRequest != nil {
		cfg.PreRequest = override.PreRequest
	}
	if override.OnThen != nil {
		cfg.OnThen = override.OnThen
	}
	if override.OnCatch != nil {
		cfg.OnCatch = override.OnCatch
	}
	if data == nil {
		data = &RequestData{}
	}
	method := string(cfg.Method)

	requestID := uuid.NewString()
	ctx = httpclient.WithRequestID(ctx, requestID)
	ctx, span := observability.StartSpan(ctx, method+" "+cfg.URL,
		trace.WithAttributes(observability.InvocationAttributes(e.client, requestID, method, cfg.URL)...))
	defer span.End()

	log := e.log.WithFields(logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldMethod, method,
		logger.FieldURL, cfg.URL,
	))

	if cfg.PreRequest != nil && !cfg.PreRequest(ctx, data) {
		span.SetAttributes(attribute.Bool(observability.AttrVetoed, true))
		if e.metrics != nil {
			e.metrics.RecordVeto(ctx, e.client, method)
		}
		log.Debug("request vetoed")
		return nil, errors.Canceled(method, cfg.URL)
	}

	req, err := buildRequest(cfg, data)
	if err != nil {
		observability.SetSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String(observability.AttrURLFull, req.Path))

	if e.metrics != nil {
		e.metrics.RecordRequestStart(ctx)
	}
	start := time.Now()
	resp, err := e.transport.Do(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		if resp == nil {
			resp = httpclient.ResponseOf(err)
		}
		if resp != nil {
			span.SetAttributes(attribute.Int(observability.AttrStatusCode, resp.StatusCode))
		}
		if IsCancel(err) {
			e.recordEnd(ctx, method, "canceled", elapsed)
			log.Debug("request canceled", logger.MergeWithDuration(nil, elapsed))
			return nil, err
		}

		observability.SetSpanError(span, err)
		e.recordEnd(ctx, method, "error", elapsed)
		if e.metrics != nil {
			e.metrics.RecordError(ctx, e.client, errorKind(err))
		}
		log.Debug("request rejected", logger.MergeWithError(logger.MergeWithDuration(nil, elapsed), err))

		if cfg.OnCatch != nil {
			cfg.OnCatch(ctx, data, err)
		}
		if extractCatchData(cfg.Options) && resp != nil {
			return nil, &PayloadError{Payload: Payload(resp), StatusCode: resp.StatusCode, Err: err}
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int(observability.AttrStatusCode, resp.StatusCode))
	e.recordEnd(ctx, method, "ok", elapsed)
	log.Debug("request fulfilled", logger.MergeWithDuration(
		logger.Fields(logger.FieldStatusCode, resp.StatusCode), elapsed))

	if cfg.OnThen != nil {
		cfg.OnThen(ctx, data, resp)
	}
	if extractData(cfg.Options) {
		return Payload(resp), nil
	}
	return resp, nil
}

func (e *executor) recordEnd(ctx context.Context, method, status string, d time.Duration) {
	if e.metrics != nil {
		e.metrics.RecordRequestEnd(ctx, e.client, method, status, d)
	}
}

// buildRequest serializes the body, renders the path and builds the query.
func buildRequest(cfg RequestConfig, data *RequestData) (httpclient.Request, error) {
	req := httpclient.Request{
		Method:  string(cfg.Method),
		BaseURL: cfg.BaseURL,
		Headers: cfg.Headers,
		Auth:    cfg.Auth,
		Timeout: cfg.Timeout,
	}

	if !validation.IsNil(data.Data) {
		req.Body = data.Data
		if cfg.DataSerializer != nil {
			body, err := cfg.DataSerializer(data.Data)
			if err != nil {
				return req, err
			}
			req.Body = body
		}
	}

	path, err := RenderPath(cfg.URL, data.PathVariables)
	if err != nil {
		return req, err
	}
	req.Path = path

	toQuery := ParamsSerializer(ToQuery)
	if cfg.ParamsSerializer != nil {
		toQuery = cfg.ParamsSerializer
	}
	if req.Query, err = toQuery(data.Params); err != nil {
		return req, err
	}
	return req, nil
}

func errorKind(err error) string {
	var he *httpclient.Error
	if stderrors.As(err, &he) {
		return he.Code.String()
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Code.String()
	}
	return "unknown"
}
