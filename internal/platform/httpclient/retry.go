package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy is the exponential backoff policy of a client.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// delay returns the wait before retry number attempt (1 is the first retry):
// initialInterval * multiplier^(attempt-1), capped at maxInterval, then
// jittered by ±25%.
func (p retryPolicy) delay(attempt int) time.Duration {
	d := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	if d > float64(p.maxInterval) {
		d = float64(p.maxInterval)
	}

	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter does not need crypto randomness
	return time.Duration(max(d, 0))
}

// send performs req, retrying transport errors and retryable statuses.
// Probe requests carry no body, so requests with a body are sent once.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	attempts := c.retry.maxAttempts
	if attempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", attempts)
	}
	if req.Body != nil && req.Body != http.NoBody {
		attempts = 1
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.wait(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if !retryable(err) {
				return nil, err
			}
			lastErr = err
			continue
		}

		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.target)
		if attempt == attempts-1 {
			return resp, lastErr
		}

		// Drain so the connection can be reused by the next attempt.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}

	return nil, lastErr
}

// wait logs the retry and sleeps for the backoff delay or until ctx ends.
func (c *Client) wait(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	d := c.retry.delay(attempt)

	c.logger.WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("peer_service", c.target),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryable reports whether a transport error may succeed on retry. The
// caller's own cancellation or deadline never is.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus reports whether a status code warrants a retry: 429 and
// any 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
