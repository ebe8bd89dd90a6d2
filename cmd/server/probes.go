package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/probes"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

// probeTargets holds the registry for each probe kind.
type probeTargets struct {
	liveness  ports.HealthRegistry
	readiness ports.HealthRegistry
}

func (t probeTargets) registry(kind string) ports.HealthRegistry {
	if kind == config.KindLiveness {
		return t.liveness
	}
	return t.readiness
}

// closer releases a probe's connection.
type closer struct {
	name string
	fn   func(context.Context) error
}

type closers []closer

// close releases every connection, logging failures.
func (cs closers) close(ctx context.Context, logger *slog.Logger) {
	for _, c := range cs {
		if err := c.fn(ctx); err != nil {
			logger.ErrorContext(ctx, "closing probe connection",
				slog.String("probe_id", c.name),
				slog.Any("error", err),
			)
		}
	}
}

// registerProbes registers the probes enabled in cfg and returns the closers
// for the connections they hold. Config validation guarantees every kind is
// either liveness or readiness. A registration the registry rejects fails
// startup, after any connections opened so far are closed.
func registerProbes(cfg *config.Config, targets probeTargets, metrics *telemetry.Metrics, logger *slog.Logger) (closers, error) {
	var cs closers
	pc := cfg.Probes

	register := func(kind, id string, probe ports.Probe) error {
		if !targets.registry(kind).Register(id, probe) {
			cs.close(context.Background(), logger)
			return fmt.Errorf("probe %q rejected by the %s registry", id, kind)
		}
		return nil
	}

	if pc.Runtime.Enabled {
		if err := register(pc.Runtime.Kind, "runtime", probes.NewRuntimeProbe(pc.Runtime.MaxGoroutines)); err != nil {
			return nil, err
		}
	}

	if pc.Redis.Enabled {
		client := probes.NewRedisClient(pc.Redis.Addr, pc.Redis.Password, pc.Redis.DB)
		cs = append(cs, closer{name: "redis", fn: func(context.Context) error { return client.Close() }})
		if err := register(pc.Redis.Kind, "redis", probes.NewRedisProbe(client, pc.Redis.Addr)); err != nil {
			return nil, err
		}
	}

	if pc.MongoDB.Enabled {
		client, err := probes.NewMongoClient(pc.MongoDB.URI, cfg.Health.ProbeTimeout)
		if err != nil {
			cs.close(context.Background(), logger)
			return nil, fmt.Errorf("mongodb probe: %w", err)
		}
		cs = append(cs, closer{name: "mongodb", fn: client.Disconnect})
		if err := register(pc.MongoDB.Kind, "mongodb", probes.NewMongoProbe(client)); err != nil {
			return nil, err
		}
	}

	for _, hp := range pc.HTTP {
		client := httpclient.New(&cfg.Client, hp.Name, metrics, logger)
		if err := register(hp.Kind, hp.Name, probes.NewHTTPProbe(client, hp.URL)); err != nil {
			return nil, err
		}
	}

	return cs, nil
}
