// Package httpclient provides the instrumented HTTP client that downstream
// dependency probes use to reach the services they check.
//
// Each request passes through, outermost first:
//
//	Circuit Breaker → Rate Limiter → Request-ID → OTEL Span → Retry → HTTP
//
// One client is created per probed target so that breaker state and rate
// limits are tracked per dependency:
//
//	client := httpclient.New(&cfg.Client, "upstream-api", metrics, logger)
//	status, err := client.Probe(ctx, "http://upstream-api:8080/health")
//
// While the breaker is open, requests fail fast with ErrCircuitOpen and no
// network call is made.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/telemetry"
)

// ErrCircuitOpen is returned when the circuit breaker rejects a request
// without sending it.
var ErrCircuitOpen = errors.New("httpclient: circuit breaker open")

// State is the circuit breaker state of a client.
type State string

// Circuit breaker states.
const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half-open"
	StateOpen     State = "open"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying the inbound request ID, which the
// client forwards as X-Request-ID so probe traffic can be correlated with the
// health request that caused it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Client is an HTTP client for a single downstream target.
type Client struct {
	httpClient *http.Client
	target     string
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	limiter    *rate.Limiter // nil when rate limiting is disabled
	retry      retryPolicy
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New creates a client for target. The target names the dependency in
// traces, metrics, and breaker logs. If metrics is nil, metric recording is
// skipped.
func New(cfg *config.ClientConfig, target string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		target:     target,
		retry: retryPolicy{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        target,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), max(cfg.RateLimit.Burst, 1))
	}

	return c
}

// Target returns the dependency name the client was created for.
func (c *Client) Target() string {
	return c.target
}

// State returns the current circuit breaker state.
func (c *Client) State() State {
	switch c.breaker.State() {
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	case gobreaker.StateOpen:
		return StateOpen
	default:
		return StateClosed
	}
}

// Do sends req through the full pipeline.
//
// A response with a non-retryable status is returned with a nil error and an
// open body the caller must close. When retries are exhausted on a retryable
// status (5xx, 429) both the last response and an error are returned; the
// caller must still close the body. On ErrCircuitOpen or a transport error
// the response is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}

		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
			req.Header.Set("X-Request-ID", id)
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.send(spanCtx, req.WithContext(spanCtx))
		if r != nil {
			span.SetAttributes(attribute.Int("http.status_code", r.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return r, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %s (%v)", ErrCircuitOpen, c.target, err)
	}

	c.recordMetrics(ctx, req.Method, start, resp, err)

	return resp, err
}

// Probe issues a GET to rawURL and returns the final status code. The body
// is drained and closed. A non-zero status is returned alongside an error
// when retries were exhausted on a retryable status.
func (c *Client) Probe(ctx context.Context, rawURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("building probe request for %s: %w", c.target, err)
	}

	resp, err := c.Do(ctx, req)
	if resp == nil {
		return 0, err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return resp.StatusCode, err
}

// startSpan creates an OTEL client span for the outbound request and injects
// W3C trace context into its headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	ctx, span := tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.target),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.target),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

// recordMetrics records client request duration and count. It runs outside
// the breaker so that rejected requests are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	result := "error"
	switch {
	case errors.Is(err, ErrCircuitOpen):
		result = "circuit_open"
	case resp != nil:
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.target),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 converts v to uint32, clamping to [0, MaxUint32].
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
