// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Probe kinds. Each kind has its own registry.
const (
	KindLiveness  = "liveness"
	KindReadiness = "readiness"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Health    HealthConfig    `koanf:"health"`
	Client    ClientConfig    `koanf:"client"`
	Probes    ProbesConfig    `koanf:"probes"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// HealthConfig holds the health reporter policy and probe execution settings.
type HealthConfig struct {
	// EmptyChecksOutcome is UP or DOWN.
	EmptyChecksOutcome string `koanf:"empty_checks_outcome"`
	// UncheckedExceptionDataStyle is NONE, ROOT_CAUSE, or STACK_TRACE.
	UncheckedExceptionDataStyle string `koanf:"unchecked_exception_data_style"`
	// ProbeTimeout bounds each probe call. Zero disables the bound.
	ProbeTimeout time.Duration `koanf:"probe_timeout"`
	// Parallelism is the number of probes run at once. 1 is sequential.
	Parallelism int `koanf:"parallelism"`
}

// ClientConfig holds settings for the HTTP client used by downstream probes.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig bounds outbound requests per downstream target.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// ProbesConfig selects the built-in probes to register at startup.
type ProbesConfig struct {
	Redis   RedisProbeConfig   `koanf:"redis"`
	MongoDB MongoProbeConfig   `koanf:"mongodb"`
	HTTP    []HTTPProbeConfig  `koanf:"http"`
	Runtime RuntimeProbeConfig `koanf:"runtime"`
}

// RedisProbeConfig configures the Redis PING probe.
type RedisProbeConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Kind     string `koanf:"kind"`
}

// MongoProbeConfig configures the MongoDB ping probe.
type MongoProbeConfig struct {
	Enabled bool   `koanf:"enabled"`
	URI     string `koanf:"uri"`
	Kind    string `koanf:"kind"`
}

// HTTPProbeConfig configures one downstream HTTP dependency probe.
type HTTPProbeConfig struct {
	Name string `koanf:"name"`
	URL  string `koanf:"url"`
	Kind string `koanf:"kind"`
}

// RuntimeProbeConfig configures the process runtime probe.
type RuntimeProbeConfig struct {
	Enabled bool `koanf:"enabled"`
	// MaxGoroutines reports DOWN above this count. Zero disables the bound.
	MaxGoroutines int    `koanf:"max_goroutines"`
	Kind          string `koanf:"kind"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
