// Package telemetry provides OpenTelemetry tracer and meter initialization
// with support for stdout (development), OTLP/HTTP (production), and
// Prometheus pull (metrics only) exporters.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "health-aggregator", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization. The handler is non-nil only for the Prometheus
// exporter and serves the scrape endpoint:
//
//	mp, handler, err := telemetry.InitMeter(ctx, "health-aggregator", telemetry.ExporterPrometheus, "")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp, "health-aggregator")
//	metrics.ProbeTotal.Add(ctx, 1, ...)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout     = "stdout"
	ExporterOTLP       = "otlp"
	ExporterPrometheus = "prometheus"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrRegistry    = attribute.Key("health.registry")
	AttrProbe       = attribute.Key("health.probe")
	AttrStatus      = attribute.Key("health.status")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	ProbeDuration         metric.Float64Histogram
	ProbeTotal            metric.Int64Counter
	ReportTotal           metric.Int64Counter
}

var errUnsupportedExporter = errors.New("unsupported exporter")

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: "otlp" uses OTLP/HTTP
// with the given endpoint and "stdout" a pretty-printed stdout exporter.
// "prometheus" has no span pipeline; spans are created but not exported.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if exporter != ExporterPrometheus {
		spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
		if err != nil {
			return nil, fmt.Errorf("creating span exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(spanExporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// The exporter parameter selects the metric reader: "otlp" pushes over
// OTLP/HTTP to endpoint, "stdout" pushes to stdout, and "prometheus" exposes
// a pull endpoint served by the returned handler. The handler is nil for the
// push exporters.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, http.Handler, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("creating resource: %w", err)
	}

	reader, handler, err := newMetricReader(ctx, exporter, endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("creating metric reader: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, handler, nil
}

// NewMetrics creates the instruments on a meter scoped to serviceName. All
// instrument errors are reported together.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := instrumentBuilder{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of outgoing HTTP requests made by probes"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Total number of outgoing HTTP requests made by probes", "{request}"),
		ProbeDuration:         b.histogram("health.probe.duration", "Duration of individual health probe executions"),
		ProbeTotal:            b.counter("health.probe.total", "Total number of health probe executions by outcome", "{probe}"),
		ReportTotal:           b.counter("health.report.total", "Total number of health reports by overall status", "{report}"),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// instrumentBuilder creates instruments and collects their errors.
type instrumentBuilder struct {
	meter metric.Meter
	errs  []error
}

// histogram creates a duration histogram in seconds.
func (b *instrumentBuilder) histogram(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (b *instrumentBuilder) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		host, secure := parseEndpoint(endpoint)
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if !secure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedExporter, exporter)
	}
}

func newMetricReader(ctx context.Context, exporter, endpoint string) (sdkmetric.Reader, http.Handler, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, nil, errors.New("otlp exporter requires an endpoint")
		}
		host, secure := parseEndpoint(endpoint)
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if !secure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return nil, nil, err
		}
		return sdkmetric.NewPeriodicReader(exp), nil, nil
	case ExporterStdout:
		exp, err := stdoutmetric.New()
		if err != nil {
			return nil, nil, err
		}
		return sdkmetric.NewPeriodicReader(exp), nil, nil
	case ExporterPrometheus:
		// A private registry keeps repeated initialization (tests, restarts
		// inside one process) from colliding on the global one.
		reg := prometheus.NewRegistry()
		exp, err := otelprom.New(otelprom.WithRegisterer(reg))
		if err != nil {
			return nil, nil, err
		}
		return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errUnsupportedExporter, exporter)
	}
}

// parseEndpoint splits a collector URL into the host:port the OTLP exporters
// expect and whether TLS is used. A bare "host:port" is returned as is and
// treated as plaintext.
func parseEndpoint(endpoint string) (host string, secure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
