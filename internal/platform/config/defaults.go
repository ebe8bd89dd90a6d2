package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultHealthParallelism = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"health.empty_checks_outcome":           "UP",
		"health.unchecked_exception_data_style": "ROOT_CAUSE",
		"health.probe_timeout":                  "0s",
		"health.parallelism":                    defaultHealthParallelism,

		"client.timeout":                         "5s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst":                1,

		"probes.redis.enabled":  false,
		"probes.redis.addr":     "localhost:6379",
		"probes.redis.password": "",
		"probes.redis.db":       0,
		"probes.redis.kind":     KindReadiness,

		"probes.mongodb.enabled": false,
		"probes.mongodb.uri":     "mongodb://localhost:27017",
		"probes.mongodb.kind":    KindReadiness,

		"probes.runtime.enabled":        true,
		"probes.runtime.max_goroutines": 0,
		"probes.runtime.kind":           KindLiveness,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "health-aggregator",
	}
}
