package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds how long a report may take. The
// handler's context carries the deadline, so probes still running when it
// expires see cancellation. A handler that has not finished by then gets an
// RFC 9457 504 response instead of its own; anything it writes afterwards
// fails with http.ErrHandlerTimeout.
//
// A panic in the handler is re-raised on the serving goroutine so Recovery
// still sees it. A non-positive timeout disables the middleware.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			dw := &deferredWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(dw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				dw.commit(w)
			case <-ctx.Done():
				dw.expire()
				dto.WriteErrorResponse(w, r, dto.ErrRequestTimeout)
			}
		})
	}
}

// deferredWriter holds the handler's response until the handler returns, so
// the timeout path can still replace it.
type deferredWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (dw *deferredWriter) Header() http.Header {
	return dw.header
}

func (dw *deferredWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.status == 0 && !dw.expired {
		dw.status = code
	}
}

func (dw *deferredWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if dw.status == 0 {
		dw.status = http.StatusOK
	}
	return dw.body.Write(b)
}

// expire discards the buffered response; later writes fail.
func (dw *deferredWriter) expire() {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	dw.expired = true
	dw.body.Reset()
}

// commit sends the buffered response to w.
func (dw *deferredWriter) commit(w http.ResponseWriter) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	maps.Copy(w.Header(), dw.header)
	if dw.status != 0 {
		w.WriteHeader(dw.status)
	}
	if dw.body.Len() > 0 {
		_, _ = w.Write(dw.body.Bytes())
	}
}
