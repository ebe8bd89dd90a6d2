package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/telemetry"
)

const (
	tracerName     = "middleware"
	unmatchedRoute = "unmatched"
)

// OpenTelemetry returns middleware that wraps each request in a server span
// and records server request metrics. An incoming W3C traceparent is
// continued, so probe spans started by the aggregator join the caller's
// trace.
//
// The span is renamed to "HTTP <method> <route>" after routing. Requests that
// match no route share the label "unmatched". A nil metrics skips recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, span := startServerSpan(r)
			defer span.End()

			sr := newStatusRecorder(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(sr, r)

			route, status := routePattern(r), sr.Status()
			finishServerSpan(span, r.Method, route, status)
			recordServerMetrics(ctx, metrics, r.Method, route, status, time.Since(start))
		})
	}
}

func startServerSpan(r *http.Request) (context.Context, trace.Span) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	return otel.Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.url", r.URL.String()),
		),
	)
}

// finishServerSpan names the span after the route and marks 5xx responses,
// including 503 DOWN reports, as errors.
func finishServerSpan(span trace.Span, method, route string, status int) {
	span.SetName("HTTP " + method + " " + route)
	span.SetAttributes(
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}

// routePattern returns the matched chi route, or "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
