package ports

import (
	"context"
	"fmt"
	"io"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
)

// Probe is implemented by any component that can report its health.
// Examples: database connections, cache connections, downstream APIs.
type Probe interface {
	// Call performs the check. A deliberate DOWN verdict is reported through
	// the returned Response; a non-nil error (or a panic) is an abnormal
	// failure that the aggregator turns into a DOWN result with diagnostics.
	// Implementations should respect context cancellation and deadlines.
	Call(ctx context.Context) (health.Response, error)
}

// ProbeFunc adapts an ordinary function to the Probe interface.
type ProbeFunc func(ctx context.Context) (health.Response, error)

// Call implements Probe.
func (f ProbeFunc) Call(ctx context.Context) (health.Response, error) {
	return f(ctx)
}

// ProbeEntry is a probe together with the id it was registered under.
type ProbeEntry struct {
	ID    string
	Probe Probe
}

// TypeID returns the id a probe registers under when none is given: its
// dynamic Go type, e.g. "*probes.RedisProbe".
func TypeID(p Probe) string {
	return fmt.Sprintf("%T", p)
}

// HealthRegistry is a named, concurrency-safe collection of probes of one
// kind (liveness, readiness, ...).
type HealthRegistry interface {
	// Name returns the registry's kind, e.g. "liveness".
	Name() string

	// Register inserts or replaces the probe stored under id. It returns
	// false instead of failing when the probe cannot be stored.
	Register(id string, probe Probe) bool

	// Remove deletes the probe stored under id. It reports whether an entry
	// was removed; a missing id is not an error.
	Remove(id string) bool

	// List returns a snapshot of the entries in registration order.
	List() []ProbeEntry
}

// HealthReporter runs probes and renders health reports. Used by the HTTP
// health handlers.
type HealthReporter interface {
	// GetHealth runs every probe of the given registries, in the order the
	// registries are passed, and reduces the results to one report.
	GetHealth(ctx context.Context, registries ...HealthRegistry) *health.Health

	// Report writes the serialized report to w. DOWN reports are also
	// written to the diagnostic log channel.
	Report(ctx context.Context, w io.Writer, h *health.Health) error
}

// ReporterSettings exposes the reporter's runtime policy. Used by the health
// config admin endpoint.
type ReporterSettings interface {
	EmptyChecksOutcome() health.Status
	SetEmptyChecksOutcome(value string) error
	UncheckedExceptionDataStyle() health.DataStyle
	SetUncheckedExceptionDataStyle(value string) error
}
