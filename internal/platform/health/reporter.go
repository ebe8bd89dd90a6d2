package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel/metric"

	domain "github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/logging"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

// DiagnosticChannel is the value of the "logger" attribute on the log records
// the reporter emits for DOWN reports.
const DiagnosticChannel = "health"

// ErrNilReport is returned by Report when given no report to write.
var ErrNilReport = errors.New("health: nil report")

// Compile-time interface checks.
var (
	_ ports.HealthReporter   = (*Reporter)(nil)
	_ ports.ReporterSettings = (*Reporter)(nil)
)

// Config is the reporter's policy.
type Config struct {
	// EmptyChecksOutcome is the overall status of a report with no checks.
	EmptyChecksOutcome domain.Status
	// UncheckedExceptionDataStyle selects the data attached to probes that
	// failed abnormally.
	UncheckedExceptionDataStyle domain.DataStyle
}

// DefaultConfig returns UP for empty reports and root-cause diagnostics.
func DefaultConfig() Config {
	return Config{
		EmptyChecksOutcome:          domain.StatusUp,
		UncheckedExceptionDataStyle: domain.DataStyleRootCause,
	}
}

// Validate checks both fields against their enumerated values.
func (c Config) Validate() error {
	if !c.EmptyChecksOutcome.IsValid() {
		return fmt.Errorf("%w: empty checks outcome %q", domain.ErrInvalidConfiguration, c.EmptyChecksOutcome)
	}
	if !c.UncheckedExceptionDataStyle.IsValid() {
		return fmt.Errorf("%w: unchecked exception data style %q",
			domain.ErrInvalidConfiguration, c.UncheckedExceptionDataStyle)
	}
	return nil
}

// Reporter drives the aggregator, applies the empty-set policy, and renders
// reports. It keeps no per-call state: each GetHealth call reads one
// configuration snapshot and builds a fresh report.
type Reporter struct {
	agg     *Aggregator
	config  atomic.Pointer[Config]
	metrics *telemetry.Metrics
	diag    *slog.Logger
}

// NewReporter creates a reporter. It fails with ErrInvalidConfiguration when
// config is invalid. If logger is nil, DOWN reports are not logged.
func NewReporter(agg *Aggregator, config Config, metrics *telemetry.Metrics, logger *slog.Logger) (*Reporter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if agg == nil {
		agg = NewAggregator(AggregatorConfig{}, metrics, logger)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := &Reporter{
		agg:     agg,
		metrics: metrics,
		diag:    logging.Channel(logger, DiagnosticChannel),
	}
	r.config.Store(&config)
	return r, nil
}

// EmptyChecksOutcome returns the status reported when there are no checks.
func (r *Reporter) EmptyChecksOutcome() domain.Status {
	return r.config.Load().EmptyChecksOutcome
}

// SetEmptyChecksOutcome parses and stores the empty-set status. Reports
// already built are unaffected. Unknown values return ErrInvalidConfiguration
// and leave the current value in place.
func (r *Reporter) SetEmptyChecksOutcome(v string) error {
	s, err := domain.ParseStatus(v)
	if err != nil {
		return err
	}
	r.update(func(c *Config) { c.EmptyChecksOutcome = s })
	return nil
}

// UncheckedExceptionDataStyle returns the diagnostic style for failed probes.
func (r *Reporter) UncheckedExceptionDataStyle() domain.DataStyle {
	return r.config.Load().UncheckedExceptionDataStyle
}

// SetUncheckedExceptionDataStyle parses and stores the diagnostic style.
// Unknown values return ErrInvalidConfiguration and leave the current value in
// place.
func (r *Reporter) SetUncheckedExceptionDataStyle(v string) error {
	s, err := domain.ParseDataStyle(v)
	if err != nil {
		return err
	}
	r.update(func(c *Config) { c.UncheckedExceptionDataStyle = s })
	return nil
}

// update replaces the configuration with a modified copy.
func (r *Reporter) update(fn func(*Config)) {
	for {
		old := r.config.Load()
		next := *old
		fn(&next)
		if r.config.CompareAndSwap(old, &next) {
			return
		}
	}
}

// GetHealth runs every probe of the given registries and reduces the results.
// Checks are ordered by registry in argument order, so callers choose and
// document the order (e.g. liveness before readiness). With no checks the
// status is the configured empty outcome; otherwise it is DOWN if any check
// is DOWN and UP otherwise.
func (r *Reporter) GetHealth(ctx context.Context, registries ...ports.HealthRegistry) *domain.Health {
	cfg := r.config.Load()

	checks := r.agg.Run(ctx, cfg.UncheckedExceptionDataStyle, registries...)
	status := reduce(checks, cfg.EmptyChecksOutcome)

	if r.metrics != nil {
		r.metrics.ReportTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrStatus.String(status.String())))
	}

	return domain.NewHealth(status, checks)
}

// reduce computes the overall status. DOWN dominates UP.
func reduce(checks []domain.CheckResult, empty domain.Status) domain.Status {
	if len(checks) == 0 {
		return empty
	}
	for _, c := range checks {
		if c.IsDown() {
			return domain.StatusDown
		}
	}
	return domain.StatusUp
}

// Serialize renders the report as
// {"status":"UP|DOWN","checks":[{"name":...,"status":...,"data":{...}}]}.
// Output is byte-identical for equal reports.
func (r *Reporter) Serialize(h *domain.Health) ([]byte, error) {
	b, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("serializing health report: %w", err)
	}
	return b, nil
}

// Report writes the serialized report to w. A DOWN report is also logged on
// the diagnostic channel with the exact payload text; this does not change
// what is written to w.
func (r *Reporter) Report(ctx context.Context, w io.Writer, h *domain.Health) error {
	if h == nil {
		return ErrNilReport
	}
	payload, err := r.Serialize(h)
	if err != nil {
		return err
	}

	if h.IsDown() {
		r.diag.WarnContext(ctx, "health report is DOWN",
			slog.String("payload", string(payload)),
		)
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing health report: %w", err)
	}
	return nil
}
