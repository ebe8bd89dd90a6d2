package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/httpclient"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "missing", incoming: ""},
		{name: "reused", incoming: "incoming-123", wantSame: true},
		{name: "uuid reused", incoming: "0f8fad5b-d9cb-469f-a165-70867728950e", wantSame: true},
		{name: "too long", incoming: strings.Repeat("a", 129)},
		{name: "space", incoming: "req 1"},
		{name: "non-ascii", incoming: "req-\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotID = middleware.RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if tt.wantSame {
				if gotID != tt.incoming {
					t.Errorf("request id = %q, want incoming %q", gotID, tt.incoming)
				}
			} else if !uuidPattern.MatchString(gotID) {
				t.Errorf("request id = %q, want a generated UUID v4", gotID)
			}
			if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
				t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
			}
		})
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 100 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		handler.ServeHTTP(rec, req)
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", id)
	}

	ctx := middleware.WithRequestID(context.Background(), "test-id")
	if got := middleware.RequestIDFromContext(ctx); got != "test-id" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "test-id")
	}
}

func TestRequestID_ForwardedByProbeClient(t *testing.T) {
	t.Parallel()

	var forwarded string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(upstream.Close)

	client := httpclient.New(&config.ClientConfig{
		Timeout:        time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Second, HalfOpenLimit: 1},
	}, "upstream", nil, nil)

	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := client.Probe(r.Context(), upstream.URL); err != nil {
			t.Errorf("Probe() error = %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody)
	req.Header.Set("X-Request-ID", "probe-req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if forwarded != "probe-req-1" {
		t.Errorf("upstream X-Request-ID = %q, want %q", forwarded, "probe-req-1")
	}
}
