package endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/apiclient/httpclient"
	"github.com/kbukum/apiclient/logger"
	"github.com/kbukum/apiclient/observability"
)

func withSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func spanAttr(s sdktrace.ReadOnlySpan, key string) (string, bool) {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == key {
			return kv.Value.Emit(), true
		}
	}
	return "", false
}

func TestInvocationSpan(t *testing.T) {
	sr := withSpanRecorder(t)
	client := newTestClient(t, ClientConfig{}, WithName("demo"))

	if _, err := client.Get("/echo/{id}", nil).New().
		PathVariables(map[string]any{"id": "7"}).
		Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]
	if s.Name() != "GET /echo/{id}" {
		t.Errorf("expected span name GET /echo/{id}, got %s", s.Name())
	}
	tests := map[string]string{
		observability.AttrClientName:  "demo",
		observability.AttrURLTemplate: "/echo/{id}",
		observability.AttrURLFull:     "/echo/7",
		observability.AttrStatusCode:  "200",
	}
	for key, want := range tests {
		if got, ok := spanAttr(s, key); !ok || got != want {
			t.Errorf("expected %s=%s, got %q", key, want, got)
		}
	}
	if id, ok := spanAttr(s, observability.AttrRequestID); !ok || id == "" {
		t.Error("expected request id attribute")
	}
}

func TestInvocationSpanOnError(t *testing.T) {
	sr := withSpanRecorder(t)
	client := newTestClient(t, ClientConfig{})

	_, _ = client.Get("/error", nil).New().Fetch(context.Background())

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status().Code)
	}
}

func TestVetoedSpan(t *testing.T) {
	sr := withSpanRecorder(t)
	client := NewClient(TransportFunc(func(context.Context, httpclient.Request) (*httpclient.Response, error) {
		t.Error("transport must not be called")
		return nil, nil
	}), ClientConfig{Options: Options{
		PreRequest: func(context.Context, *RequestData) bool { return false },
	}})

	_, _ = client.Post("/a", nil).Call(context.Background(), map[string]any{"a": 1}, nil)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if v, _ := spanAttr(spans[0], observability.AttrVetoed); v != "true" {
		t.Errorf("expected vetoed attribute, got %q", v)
	}
	if spans[0].Status().Code == codes.Error {
		t.Error("expected a veto not to mark the span as failed")
	}
}

func TestInvocationMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())
	metrics, err := observability.NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vetoed := true
	client := newTestClient(t, ClientConfig{Options: Options{
		PreRequest: func(context.Context, *RequestData) bool { return !vetoed },
	}}, WithMetrics(metrics))
	ctx := context.Background()

	_, _ = client.Get("/text", nil).Call(ctx, nil, nil)
	vetoed = false
	_, _ = client.Get("/text", nil).Call(ctx, nil, nil)
	_, _ = client.Get("/error", nil).Call(ctx, nil, nil)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					totals[m.Name] += dp.Value
				}
			}
		}
	}

	want := map[string]int64{
		"apiclient.request.total":  2,
		"apiclient.request.active": 0,
		"apiclient.request.vetoed": 1,
		"apiclient.error.total":    1,
	}
	for name, n := range want {
		if totals[name] != n {
			t.Errorf("expected %s=%d, got %d", name, n, totals[name])
		}
	}
}

func TestInvocationLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "demo", &buf)
	client := newTestClient(t, ClientConfig{}, WithLogger(log))

	if _, err := client.Get("/text", nil).Call(context.Background(), nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json log line: %v", err)
	}
	if entry["message"] != "request fulfilled" {
		t.Errorf("expected request fulfilled, got %v", entry["message"])
	}
	if entry[logger.FieldComponent] != "endpoint" || entry[logger.FieldClient] != "demo" {
		t.Errorf("expected component and client fields, got %v", entry)
	}
	if entry[logger.FieldStatusCode] != float64(http.StatusOK) {
		t.Errorf("expected status code 200, got %v", entry[logger.FieldStatusCode])
	}
	if id, _ := entry[logger.FieldRequestID].(string); id == "" {
		t.Error("expected request id field")
	}
}

func TestBuildRequest(t *testing.T) {
	cfg := RequestConfig{
		URL:    "/users/{id}/posts",
		Method: MethodPost,
		Options: Options{
			BaseURL:        "http://api",
			Headers:        map[string]string{"X-Tenant": "t1"},
			DataSerializer: URLEncoded,
		},
	}
	req, err := buildRequest(cfg, &RequestData{
		PathVariables: map[string]any{"id": 3},
		Params:        map[string]any{"page": 2},
		Data:          map[string]any{"title": "a b"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Path != "/users/3/posts" || req.Query.Get("page") != "2" {
		t.Errorf("unexpected path or query: %s %v", req.Path, req.Query)
	}
	if req.Body != httpclient.FormBody("title=a+b") {
		t.Errorf("expected form body, got %#v", req.Body)
	}
	if req.BaseURL != "http://api" || req.Headers["X-Tenant"] != "t1" {
		t.Errorf("expected base url and headers, got %+v", req)
	}

	cfg.ParamsSerializer = func(any) (url.Values, error) {
		return url.Values{"fixed": {"1"}}, nil
	}
	req, err = buildRequest(cfg, &RequestData{Params: map[string]any{"page": 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Query.Encode() != "fixed=1" {
		t.Errorf("expected custom params serializer, got %v", req.Query)
	}
	if req.Body != nil {
		t.Errorf("expected no body without data, got %#v", req.Body)
	}
}
