package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/telemetry"
)

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer         *sdktrace.TracerProvider
	meter          *sdkmetric.MeterProvider
	metrics        *telemetry.Metrics
	metricsHandler nethttp.Handler
}

// Shutdown flushes whichever providers were started. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	o := &otelProviders{}
	if !cfg.Telemetry.Enabled {
		return o, nil
	}
	tc := cfg.Telemetry

	tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	o.tracer = tp

	mp, handler, err := telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	o.meter, o.metricsHandler = mp, handler

	if o.metrics, err = telemetry.NewMetrics(mp, tc.ServiceName); err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}
