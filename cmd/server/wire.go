package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http"
	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/middleware"
	domain "github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/telemetry"
)

// wiring carries the values built before the container exists.
type wiring struct {
	cfg            *config.Config
	logger         *slog.Logger
	metrics        *telemetry.Metrics
	metricsHandler nethttp.Handler
}

// quietPaths are probed by orchestrators often enough that successful
// requests are not logged.
var quietPaths = []string{"/health/live", "/health/ready"}

func wire(injector *do.RootScope, w wiring) {
	for _, kind := range []string{config.KindLiveness, config.KindReadiness} {
		do.ProvideNamed(injector, kind, w.registry(kind))
	}
	do.Provide(injector, w.aggregator)
	do.Provide(injector, w.reporter)
	do.Provide(injector, w.healthHandler)
	do.Provide(injector, w.configHandler)
	do.Provide(injector, w.router)
	do.Provide(injector, w.server)
}

func (w wiring) registry(kind string) func(do.Injector) (*health.Registry, error) {
	return func(do.Injector) (*health.Registry, error) {
		return health.NewRegistry(kind, health.WithRegistryLogger(w.logger)), nil
	}
}

func (w wiring) aggregator(do.Injector) (*health.Aggregator, error) {
	return health.NewAggregator(health.AggregatorConfig{
		Timeout:     w.cfg.Health.ProbeTimeout,
		Parallelism: w.cfg.Health.Parallelism,
	}, w.metrics, w.logger), nil
}

func (w wiring) reporter(i do.Injector) (*health.Reporter, error) {
	rc, err := reporterConfig(w.cfg.Health)
	if err != nil {
		return nil, fmt.Errorf("health reporter config: %w", err)
	}
	agg, err := do.Invoke[*health.Aggregator](i)
	if err != nil {
		return nil, err
	}
	return health.NewReporter(agg, rc, w.metrics, w.logger)
}

func (w wiring) healthHandler(i do.Injector) (*handlers.HealthHandler, error) {
	reporter, err := do.Invoke[*health.Reporter](i)
	if err != nil {
		return nil, err
	}
	return handlers.NewHealthHandler(reporter,
		do.MustInvokeNamed[*health.Registry](i, config.KindLiveness),
		do.MustInvokeNamed[*health.Registry](i, config.KindReadiness),
	), nil
}

func (w wiring) configHandler(i do.Injector) (*handlers.HealthConfigHandler, error) {
	reporter, err := do.Invoke[*health.Reporter](i)
	if err != nil {
		return nil, err
	}
	return handlers.NewHealthConfigHandler(reporter), nil
}

func (w wiring) router(i do.Injector) (nethttp.Handler, error) {
	healthH, err := do.Invoke[*handlers.HealthHandler](i)
	if err != nil {
		return nil, err
	}
	configH, err := do.Invoke[*handlers.HealthConfigHandler](i)
	if err != nil {
		return nil, err
	}

	stack := middleware.Chain(
		middleware.Recovery(w.logger),
		middleware.RequestID(),
		middleware.OpenTelemetry(w.metrics),
		middleware.Logging(w.logger, quietPaths...),
		middleware.Timeout(w.cfg.Server.WriteTimeout),
	)
	return adapthttp.NewRouter(healthH, configH, w.metricsHandler, stack), nil
}

func (w wiring) server(i do.Injector) (*adapthttp.Server, error) {
	handler, err := do.Invoke[nethttp.Handler](i)
	if err != nil {
		return nil, err
	}
	return adapthttp.NewServer(w.cfg.Server, handler, w.logger), nil
}

// reporterConfig converts the validated health config section into the
// reporter policy.
func reporterConfig(cfg config.HealthConfig) (health.Config, error) {
	outcome, err := domain.ParseStatus(cfg.EmptyChecksOutcome)
	if err != nil {
		return health.Config{}, err
	}
	style, err := domain.ParseDataStyle(cfg.UncheckedExceptionDataStyle)
	if err != nil {
		return health.Config{}, err
	}
	return health.Config{EmptyChecksOutcome: outcome, UncheckedExceptionDataStyle: style}, nil
}
