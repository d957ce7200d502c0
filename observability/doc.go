// Package observability provides OpenTelemetry tracing and metrics for
// endpoint invocations.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("billing-api"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "GET /users/{id}")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("billing-api"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("billing-api"))
//	metrics.RecordRequestEnd(ctx, "billing-api", "GET", "ok", duration)
package observability
