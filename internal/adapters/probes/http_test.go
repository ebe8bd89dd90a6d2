package probes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/probes"
	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/config"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/httpclient"
)

func probeClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Timeout: time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   1,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
}

func TestHTTPProbe_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   health.Status
	}{
		{name: "ok", status: http.StatusOK, want: health.StatusUp},
		{name: "no content", status: http.StatusNoContent, want: health.StatusUp},
		{name: "not found", status: http.StatusNotFound, want: health.StatusDown},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: health.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(probeClientConfig(), "upstream", nil, nil)
			resp, err := probes.NewHTTPProbe(client, srv.URL).Call(context.Background())
			if err != nil {
				t.Fatalf("Call() error = %v", err)
			}

			if resp.Name != "upstream" {
				t.Errorf("Name = %q, want %q", resp.Name, "upstream")
			}
			if resp.Status != tt.want {
				t.Errorf("Status = %q, want %q", resp.Status, tt.want)
			}
			if got, _ := resp.Data.Get("url"); got != srv.URL {
				t.Errorf("url = %q, want %q", got, srv.URL)
			}
			if _, ok := resp.Data.Get("status"); !ok {
				t.Error("missing status entry")
			}
		})
	}
}

func TestHTTPProbe_CircuitOpen(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(probeClientConfig(), "upstream", nil, nil)
	probe := probes.NewHTTPProbe(client, srv.URL)

	// The first failure trips the breaker.
	if _, err := probe.Call(context.Background()); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	resp, err := probe.Call(context.Background())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if resp.Status != health.StatusDown {
		t.Errorf("Status = %q, want DOWN", resp.Status)
	}
	if state, _ := resp.Data.Get("state"); state != "open" {
		t.Errorf("state = %q, want open", state)
	}
	if _, ok := resp.Data.Get("status"); ok {
		t.Error("rejected request must not report a status code")
	}
	if hits.Load() != 1 {
		t.Errorf("hits = %d, want 1", hits.Load())
	}
}

func TestHTTPProbe_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := httpclient.New(probeClientConfig(), "upstream", nil, nil)
	resp, err := probes.NewHTTPProbe(client, url).Call(context.Background())
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if resp.Status != health.StatusDown {
		t.Errorf("Status = %q, want DOWN", resp.Status)
	}
	if _, ok := resp.Data.Get("error"); !ok {
		t.Error("missing error entry for unreachable target")
	}
}
