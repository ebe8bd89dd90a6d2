package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-health-aggregator/internal/adapters/http/dto"
)

// errInternalServer is what the client sees for a recovered panic. The panic
// value stays in the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a logged error
// and an RFC 9457 500 response. If the status line was already sent only the
// log entry is emitted. http.ErrAbortHandler is re-raised so net/http can
// abort the connection quietly.
//
// The request id is read back from the response header, since RequestID runs
// inside Recovery and its context is not visible here.
//
// Probe panics never reach this middleware; the aggregator turns them into
// DOWN checks. This covers the handlers and middleware themselves.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panic recovered",
					slog.String("operation", "middleware.Recovery"),
					slog.String("request_id", sr.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)

				if !sr.Committed() {
					dto.WriteErrorResponse(sr, r, errInternalServer)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
