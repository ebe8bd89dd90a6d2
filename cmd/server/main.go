// Package main is the entry point for the health service. It wires all
// dependencies using samber/do v2, registers the configured probes, starts
// the HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/logging"
)

const (
	serverShutdownTimeout = 15 * time.Second
	probeShutdownTimeout  = 5 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	a, err := bootstrap(ctx, profile)
	if err != nil {
		return err
	}
	return a.serve(ctx)
}

// app holds everything the process owns between startup and shutdown.
type app struct {
	logger  *slog.Logger
	otel    *otelProviders
	server  *adapthttp.Server
	closers closers
}

// bootstrap loads configuration, initializes telemetry, resolves the
// dependency graph and registers the configured probes.
func bootstrap(ctx context.Context, profile string) (*app, error) {
	cfg, err := config.Load(profile, config.WithConfigDir(os.Getenv("APP_CONFIG_DIR")))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	providers, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	wire(injector, wiring{
		cfg:            cfg,
		logger:         logger,
		metrics:        providers.metrics,
		metricsHandler: providers.metricsHandler,
	})

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = providers.Shutdown(ctx)
		return nil, fmt.Errorf("resolving server: %w", err)
	}

	targets := probeTargets{
		liveness:  do.MustInvokeNamed[*health.Registry](injector, config.KindLiveness),
		readiness: do.MustInvokeNamed[*health.Registry](injector, config.KindReadiness),
	}
	cs, err := registerProbes(cfg, targets, providers.metrics, logger)
	if err != nil {
		_ = providers.Shutdown(ctx)
		return nil, fmt.Errorf("registering probes: %w", err)
	}
	logger.Info("probes registered",
		slog.Int(config.KindLiveness, len(targets.liveness.List())),
		slog.Int(config.KindReadiness, len(targets.readiness.List())),
	)

	return &app{logger: logger, otel: providers, server: server, closers: cs}, nil
}

// serve runs the HTTP server until ctx is cancelled or the listener fails,
// then releases resources in reverse order of acquisition.
func (a *app) serve(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Start()
	}()

	var failure error
	select {
	case <-ctx.Done():
		a.logger.Info("received shutdown signal", slog.Any("cause", context.Cause(ctx)))
	case err := <-serverErr:
		failure = fmt.Errorf("server failed: %w", err)
		serverErr = nil
	}

	a.shutdown(serverErr)
	if failure != nil {
		return failure
	}
	a.logger.Info("shutdown complete")
	return nil
}

type shutdownStep struct {
	name    string
	timeout time.Duration
	fn      func(context.Context) error
}

// shutdown runs the shutdown steps in order, each under its own deadline.
// A nil serverErr means the server already stopped and is not drained.
func (a *app) shutdown(serverErr <-chan error) {
	var steps []shutdownStep
	if serverErr != nil {
		steps = append(steps, shutdownStep{"http server", serverShutdownTimeout, func(ctx context.Context) error {
			err := a.server.Shutdown(ctx)
			<-serverErr
			return err
		}})
	}
	steps = append(steps,
		shutdownStep{"probe clients", probeShutdownTimeout, func(ctx context.Context) error {
			a.closers.close(ctx, a.logger)
			return nil
		}},
		shutdownStep{"telemetry", otelShutdownTimeout, a.otel.Shutdown},
	)

	for _, s := range steps {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		if err := s.fn(ctx); err != nil {
			a.logger.Error("shutdown step failed",
				slog.String("step", s.name),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}
