package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/httpclient"
)

const headerRequestID = "X-Request-ID"

// requestIDKey is the middleware package's context key. The httpclient key is
// set alongside it so probe requests carry the same ID.
type requestIDKey struct{}

// WithRequestID returns a new context with the given request ID stored in it.
// It also stores the ID via httpclient.WithRequestID so that HTTP probes run
// for this request forward the same X-Request-ID downstream.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	ctx = httpclient.WithRequestID(ctx, id)
	return ctx
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// maxRequestIDLen bounds an accepted incoming X-Request-ID.
const maxRequestIDLen = 128

// RequestID returns middleware that assigns each request an X-Request-ID. An
// incoming header is reused when it is at most 128 printable ASCII
// characters; otherwise a new UUID v4 is generated, so a caller cannot inject
// arbitrary text into log lines. The ID is stored in the request context and
// echoed as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
