package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Health.validate(),
		c.Client.validate(),
		c.Probes.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (h *HealthConfig) validate() error {
	var errs []error

	if _, err := health.ParseStatus(h.EmptyChecksOutcome); err != nil {
		errs = append(errs, fmt.Errorf("health.empty_checks_outcome: %w", err))
	}
	if _, err := health.ParseDataStyle(h.UncheckedExceptionDataStyle); err != nil {
		errs = append(errs, fmt.Errorf("health.unchecked_exception_data_style: %w", err))
	}
	if h.ProbeTimeout < 0 {
		errs = append(errs, errors.New("health.probe_timeout must not be negative"))
	}
	if h.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("health.parallelism must be >= 1, got %d", h.Parallelism))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst must be >= 1, got %d", cl.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (p *ProbesConfig) validate() error {
	var errs []error

	if p.Redis.Enabled {
		if p.Redis.Addr == "" {
			errs = append(errs, errors.New("probes.redis.addr must not be empty when enabled"))
		}
		errs = append(errs, validateKind("probes.redis.kind", p.Redis.Kind))
	}

	if p.MongoDB.Enabled {
		if p.MongoDB.URI == "" {
			errs = append(errs, errors.New("probes.mongodb.uri must not be empty when enabled"))
		}
		errs = append(errs, validateKind("probes.mongodb.kind", p.MongoDB.Kind))
	}

	seen := make(map[string]bool, len(p.HTTP))
	for i, h := range p.HTTP {
		field := fmt.Sprintf("probes.http[%d]", i)
		if h.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name must not be empty", field))
		} else if seen[h.Name] {
			errs = append(errs, fmt.Errorf("%s.name %q is duplicated", field, h.Name))
		}
		seen[h.Name] = true

		if u, err := url.Parse(h.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s.url must be an absolute URL, got %q", field, h.URL))
		}
		errs = append(errs, validateKind(field+".kind", h.Kind))
	}

	if p.Runtime.Enabled {
		if p.Runtime.MaxGoroutines < 0 {
			errs = append(errs, fmt.Errorf("probes.runtime.max_goroutines must not be negative, got %d",
				p.Runtime.MaxGoroutines))
		}
		errs = append(errs, validateKind("probes.runtime.kind", p.Runtime.Kind))
	}

	return errors.Join(errs...)
}

func validateKind(field, kind string) error {
	switch kind {
	case KindLiveness, KindReadiness:
		return nil
	default:
		return fmt.Errorf("%s must be one of: %s, %s; got %q", field, KindLiveness, KindReadiness, kind)
	}
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp", "prometheus":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp, prometheus; got %q",
			t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when enabled"))
	}

	return errors.Join(errs...)
}
