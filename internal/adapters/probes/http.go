package probes

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/go-health-aggregator/internal/domain/health"
	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-health-aggregator/internal/ports"
)

var _ ports.Probe = (*HTTPProbe)(nil)

// HTTPProbe checks a downstream service by issuing GET to its health URL
// through a circuit-breaking client. Any 2xx or 3xx status is UP.
type HTTPProbe struct {
	url    string
	client *httpclient.Client
}

// NewHTTPProbe creates a probe named after the client's target.
func NewHTTPProbe(client *httpclient.Client, url string) *HTTPProbe {
	return &HTTPProbe{url: url, client: client}
}

// Call implements ports.Probe. While the client's breaker is open the probe
// reports DOWN without sending a request.
func (p *HTTPProbe) Call(ctx context.Context) (health.Response, error) {
	b := health.Named(p.client.Target()).WithData("url", p.url)

	status, err := p.client.Probe(ctx, p.url)
	if status > 0 {
		b.WithData("status", strconv.Itoa(status))
	}
	b.WithData("state", string(p.client.State()))

	switch {
	case errors.Is(err, httpclient.ErrCircuitOpen):
		return b.Down().Build(), nil
	case err != nil:
		return b.Down().WithData(keyError, err.Error()).Build(), nil
	case status >= http.StatusBadRequest:
		return b.Down().Build(), nil
	default:
		return b.Up().Build(), nil
	}
}
