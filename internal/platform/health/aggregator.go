package health

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	domain "github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

// AggregatorConfig configures probe execution.
type AggregatorConfig struct {
	// Timeout bounds each probe call. A probe that exceeds it is reported
	// DOWN. Zero disables the bound.
	Timeout time.Duration

	// Parallelism is the maximum number of probes run at once. Values below
	// 2 run probes one at a time in registration order.
	Parallelism int
}

// Aggregator runs the probes of one or more registries and turns every
// probe, including a misbehaving one, into exactly one check result.
type Aggregator struct {
	config  AggregatorConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewAggregator creates an aggregator. If metrics is nil, metric recording is
// skipped; if logger is nil, probe failures are not logged.
func NewAggregator(config AggregatorConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Aggregator {
	if config.Timeout < 0 {
		config.Timeout = 0
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Aggregator{
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// job is one probe to run, tagged with the registry it came from.
type job struct {
	registry string
	entry    ports.ProbeEntry
}

// Run executes every probe of the given registries and returns one result per
// probe. Results are ordered by registry (in argument order), then by
// registration order within a registry, regardless of completion order.
//
// Run never fails: a probe that panics, returns an error, returns an invalid
// status, or times out yields a DOWN result whose data follows style.
func (a *Aggregator) Run(ctx context.Context, style domain.DataStyle, registries ...ports.HealthRegistry) []domain.CheckResult {
	var jobs []job
	for _, reg := range registries {
		if reg == nil {
			continue
		}
		for _, e := range reg.List() {
			jobs = append(jobs, job{registry: reg.Name(), entry: e})
		}
	}

	results := make([]domain.CheckResult, len(jobs))

	if a.config.Parallelism < 2 || len(jobs) < 2 {
		for i, j := range jobs {
			results[i] = a.check(ctx, style, j)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(a.config.Parallelism)
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = a.check(ctx, style, j)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// check runs a single probe inside its own span and converts the outcome to
// a check result.
func (a *Aggregator) check(ctx context.Context, style domain.DataStyle, j job) domain.CheckResult {
	start := time.Now()

	tracer := otel.GetTracerProvider().Tracer("health")
	ctx, span := tracer.Start(ctx, "health.probe "+j.entry.ID,
		trace.WithAttributes(
			telemetry.AttrRegistry.String(j.registry),
			telemetry.AttrProbe.String(j.entry.ID),
		),
	)
	defer span.End()

	var result domain.CheckResult
	resp, err := a.invoke(ctx, j.entry)
	if err != nil {
		result = failureResult(j.entry.ID, err, style)

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		a.logger.WarnContext(ctx, "health probe failed",
			slog.String("operation", "health.Aggregator.Run"),
			slog.String("registry", j.registry),
			slog.String("probe_id", j.entry.ID),
			slog.Any("error", err),
		)
	} else {
		result = domain.ResultFromResponse(resp)
		if result.Name == "" {
			result.Name = j.entry.ID
		}
	}

	span.SetAttributes(telemetry.AttrStatus.String(result.Status.String()))
	a.recordMetrics(ctx, j, result, err, start)

	return result
}

// invoke calls the probe, bounded by the configured timeout. On timeout the
// probe goroutine is abandoned and its eventual result discarded. The
// resulting ProbeError has no stack.
func (a *Aggregator) invoke(ctx context.Context, e ports.ProbeEntry) (domain.Response, error) {
	if a.config.Timeout <= 0 {
		return callProbe(ctx, e)
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	type outcome struct {
		resp domain.Response
		err  error
	}
	done := make(chan outcome, 1)

	go func() {
		resp, err := callProbe(ctx, e)
		done <- outcome{resp: resp, err: err}
	}()

	select {
	case o := <-done:
		return o.resp, o.err
	case <-ctx.Done():
		cause := ctx.Err()
		if errors.Is(cause, context.DeadlineExceeded) {
			cause = &domain.TimeoutError{After: a.config.Timeout}
		}
		return domain.Response{}, &domain.ProbeError{ID: e.ID, Cause: cause}
	}
}

// callProbe calls the probe and converts panics, returned errors, and
// invalid statuses into a *domain.ProbeError.
func callProbe(ctx context.Context, e ports.ProbeEntry) (resp domain.Response, err error) {
	defer func() {
		if v := recover(); v != nil {
			cause, ok := v.(error)
			if !ok {
				cause = &domain.PanicError{Value: v}
			}
			resp = domain.Response{}
			err = &domain.ProbeError{ID: e.ID, Cause: cause, Stack: debug.Stack()}
		}
	}()

	r, callErr := e.Probe.Call(ctx)
	if callErr != nil {
		return domain.Response{}, &domain.ProbeError{ID: e.ID, Cause: callErr, Stack: debug.Stack()}
	}
	if !r.Status.IsValid() {
		return domain.Response{}, &domain.ProbeError{
			ID:    e.ID,
			Cause: &domain.InvalidStatusError{Status: r.Status},
			Stack: debug.Stack(),
		}
	}
	return r, nil
}

// failureResult builds the DOWN result for an abnormal probe failure. The
// result is named after the registry id since the probe produced no name.
func failureResult(id string, err error, style domain.DataStyle) domain.CheckResult {
	var perr *domain.ProbeError
	if !errors.As(err, &perr) {
		perr = &domain.ProbeError{ID: id, Cause: err}
	}

	result := domain.CheckResult{Name: id, Status: domain.StatusDown}
	switch style {
	case domain.DataStyleRootCause:
		result.Data = domain.NewData(domain.DataKeyRootCause, perr.RootCause())
	case domain.DataStyleStackTrace:
		result.Data = domain.NewData(domain.DataKeyStackTrace, perr.Trace())
	case domain.DataStyleNone:
	}
	return result
}

// recordMetrics records probe duration and count metrics. Safe to call with
// nil metrics.
func (a *Aggregator) recordMetrics(ctx context.Context, j job, result domain.CheckResult, err error, start time.Time) {
	if a.metrics == nil {
		return
	}

	outcome := "up"
	switch {
	case err != nil:
		outcome = "failed"
	case result.IsDown():
		outcome = "down"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrRegistry.String(j.registry),
		telemetry.AttrProbe.String(j.entry.ID),
		telemetry.AttrStatus.String(result.Status.String()),
		telemetry.AttrResult.String(outcome),
	)

	a.metrics.ProbeDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	a.metrics.ProbeTotal.Add(ctx, 1, attrs)
}
