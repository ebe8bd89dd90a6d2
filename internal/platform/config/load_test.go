package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
	if cfg.Health.Parallelism != 4 {
		t.Errorf("Health.Parallelism = %d, want 4 (from base)", cfg.Health.Parallelism)
	}
	if !cfg.Probes.Runtime.Enabled || cfg.Probes.Runtime.Kind != config.KindLiveness {
		t.Errorf("Probes.Runtime = %+v, want enabled liveness probe (from base)", cfg.Probes.Runtime)
	}

	// Overridden by local.yaml.
	if cfg.Health.UncheckedExceptionDataStyle != "STACK_TRACE" {
		t.Errorf("Health.UncheckedExceptionDataStyle = %q, want \"STACK_TRACE\"",
			cfg.Health.UncheckedExceptionDataStyle)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "{}\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Health.EmptyChecksOutcome != "UP" {
		t.Errorf("Health.EmptyChecksOutcome = %q, want \"UP\" (default)", cfg.Health.EmptyChecksOutcome)
	}
	if cfg.Health.UncheckedExceptionDataStyle != "ROOT_CAUSE" {
		t.Errorf("Health.UncheckedExceptionDataStyle = %q, want \"ROOT_CAUSE\" (default)",
			cfg.Health.UncheckedExceptionDataStyle)
	}
	if cfg.Health.Parallelism != 1 {
		t.Errorf("Health.Parallelism = %d, want 1 (default)", cfg.Health.Parallelism)
	}
}

func TestLoad_HTTPProbeList(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if len(cfg.Probes.HTTP) != 1 {
		t.Fatalf("len(Probes.HTTP) = %d, want 1", len(cfg.Probes.HTTP))
	}
	got := cfg.Probes.HTTP[0]
	if got.Name != "upstream-api" || got.Kind != config.KindReadiness {
		t.Errorf("Probes.HTTP[0] = %+v", got)
	}
	if !cfg.Probes.Redis.Enabled || !cfg.Probes.MongoDB.Enabled {
		t.Error("prod must enable the redis and mongodb probes")
	}
}

func TestLoad_EnvOverrideHealthPolicy(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_HEALTH_EMPTY_CHECKS_OUTCOME", "DOWN")
	t.Setenv("APP_HEALTH_PROBE_TIMEOUT", "250ms")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Health.EmptyChecksOutcome != "DOWN" {
		t.Errorf("Health.EmptyChecksOutcome = %q, want \"DOWN\" (env override)", cfg.Health.EmptyChecksOutcome)
	}
	if cfg.Health.ProbeTimeout != 250*time.Millisecond {
		t.Errorf("Health.ProbeTimeout = %v, want 250ms (env override)", cfg.Health.ProbeTimeout)
	}
}

func TestLoad_InvalidHealthPolicyFromEnv(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_HEALTH_UNCHECKED_EXCEPTION_DATA_STYLE", "VERBOSE")

	_, err := config.Load("local")
	if !errors.Is(err, health.ErrInvalidConfiguration) {
		t.Fatalf("Load error = %v, want ErrInvalidConfiguration", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent", config.WithConfigDir(""))
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
	if !strings.Contains(err.Error(), filepath.Join("configs", "nonexistent.yaml")) {
		t.Errorf("error = %q, want it to name the missing profile file", err)
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../prod", `dev\local`, "a..b"} {
		if _, err := config.Load(profile, config.WithConfigDir(t.TempDir())); err == nil {
			t.Errorf("Load(%q) error = nil, want rejection", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_HealthPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown outcome", mutate: func(c *config.Config) { c.Health.EmptyChecksOutcome = "MAYBE" }},
		{name: "unknown style", mutate: func(c *config.Config) { c.Health.UncheckedExceptionDataStyle = "VERBOSE" }},
		{name: "negative timeout", mutate: func(c *config.Config) { c.Health.ProbeTimeout = -time.Second }},
		{name: "zero parallelism", mutate: func(c *config.Config) { c.Health.Parallelism = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_LegacyDataStyleSpelling(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Health.UncheckedExceptionDataStyle = "stackTrace"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for legacy spelling: %v", err)
	}
}

func TestValidate_Probes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "redis without addr", mutate: func(c *config.Config) {
			c.Probes.Redis = config.RedisProbeConfig{Enabled: true, Kind: config.KindReadiness}
		}},
		{name: "mongodb bad kind", mutate: func(c *config.Config) {
			c.Probes.MongoDB = config.MongoProbeConfig{Enabled: true, URI: "mongodb://x", Kind: "startup"}
		}},
		{name: "http relative url", mutate: func(c *config.Config) {
			c.Probes.HTTP = []config.HTTPProbeConfig{{Name: "api", URL: "/health", Kind: config.KindReadiness}}
		}},
		{name: "http duplicate name", mutate: func(c *config.Config) {
			c.Probes.HTTP = []config.HTTPProbeConfig{
				{Name: "api", URL: "http://a/health", Kind: config.KindReadiness},
				{Name: "api", URL: "http://b/health", Kind: config.KindReadiness},
			}
		}},
		{name: "runtime negative bound", mutate: func(c *config.Config) { c.Probes.Runtime.MaxGoroutines = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_PrometheusExporter(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "prometheus", ServiceName: "svc"}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for prometheus exporter: %v", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Health: config.HealthConfig{
			EmptyChecksOutcome:          "UP",
			UncheckedExceptionDataStyle: "ROOT_CAUSE",
			ProbeTimeout:                time.Second,
			Parallelism:                 1,
		},
		Client: config.ClientConfig{
			Timeout: 2 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 10,
				Burst:             5,
			},
		},
		Probes: config.ProbesConfig{
			Runtime: config.RuntimeProbeConfig{
				Enabled: true,
				Kind:    config.KindLiveness,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
