// Package health implements the health aggregation engine: concurrency-safe
// probe registries, an aggregator that runs probes with per-probe failure
// isolation, and a reporter that reduces results to one report and renders
// it.
//
// Registries are constructed explicitly, one per probe kind, and passed to
// the reporter on every call:
//
//	liveness := health.NewRegistry("liveness")
//	readiness := health.NewRegistry("readiness")
//	readiness.Register("redis", probes.NewRedisProbe(client))
//
//	report := reporter.GetHealth(ctx, liveness, readiness)
//	err := reporter.Report(ctx, w, report)
package health

import (
	"fmt"
	"log/slog"
	"sync"

	domain "github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Entries keep the position of their first registration; re-registering an
// id replaces the probe in place.
type Registry struct {
	name   string
	logger *slog.Logger

	mu     sync.RWMutex
	probes map[string]ports.Probe
	order  []string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used to report rejected registrations.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry for the given probe kind.
func NewRegistry(name string, opts ...RegistryOption) *Registry {
	r := &Registry{
		name:   name,
		logger: slog.New(slog.DiscardHandler),
		probes: make(map[string]ports.Probe),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the registry's probe kind.
func (r *Registry) Name() string {
	return r.name
}

// Register inserts or replaces the probe stored under id. Safe for concurrent
// use. A rejected registration is logged and reported as false; it never
// panics into the caller.
func (r *Registry) Register(id string, probe ports.Probe) bool {
	if err := r.store(id, probe); err != nil {
		r.reject(id, err)
		return false
	}
	return true
}

// RegisterProbe registers probe under its Go type name (see [ports.TypeID]).
func (r *Registry) RegisterProbe(probe ports.Probe) bool {
	if probe == nil {
		r.reject("", errNilProbe)
		return false
	}
	return r.Register(ports.TypeID(probe), probe)
}

var errNilProbe = fmt.Errorf("%w: probe must not be nil", domain.ErrRegistration)

func (r *Registry) reject(id string, err error) {
	r.logger.Warn("probe registration rejected",
		slog.String("operation", "health.Registry.Register"),
		slog.String("registry", r.name),
		slog.String("probe_id", id),
		slog.Any("error", err),
	)
}

func (r *Registry) store(id string, probe ports.Probe) (err error) {
	if id == "" {
		return fmt.Errorf("%w: probe id must not be empty", domain.ErrRegistration)
	}
	if probe == nil {
		return errNilProbe
	}

	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: %v", domain.ErrRegistration, v)
		}
	}()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.probes[id]; !exists {
		r.order = append(r.order, id)
	}
	r.probes[id] = probe
	return nil
}

// Remove deletes the probe stored under id and reports whether it existed.
// Safe for concurrent use.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.probes[id]; !exists {
		return false
	}
	delete(r.probes, id)

	for i, n := range r.order {
		if n == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns the entries in registration order. The slice is copied under
// a read lock so probes run without holding the lock.
func (r *Registry) List() []ports.ProbeEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]ports.ProbeEntry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, ports.ProbeEntry{ID: id, Probe: r.probes[id]})
	}
	return entries
}
