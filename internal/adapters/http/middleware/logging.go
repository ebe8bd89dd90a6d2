package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID from context, stores
// it via logging.WithLogger for downstream use, and logs completion with
// method, path, status code, and duration.
//
// Orchestrators poll health endpoints every few seconds. Successful requests
// to quietPaths are therefore logged at debug level; any 5xx response,
// including a DOWN report (503), is logged at warn level.
func Logging(logger *slog.Logger, quietPaths ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(slog.String("request_id", RequestIDFromContext(ctx)))
			ctx = logging.WithLogger(ctx, child)

			quiet := slices.Contains(quietPaths, r.URL.Path)

			child.Log(ctx, startLevel(quiet), "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			sr := newStatusRecorder(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			child.Log(ctx, completionLevel(quiet, sr.Status()), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sr.Status()),
				slog.Int64("bytes", sr.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func startLevel(quiet bool) slog.Level {
	if quiet {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func completionLevel(quiet bool, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelWarn
	case quiet:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
