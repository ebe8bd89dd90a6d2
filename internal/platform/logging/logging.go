// Package logging builds the service's slog loggers and carries them
// through request contexts.
//
// Records are JSON by default and pass through masq redaction before they
// are written. Error logs name the operation and the entity involved, then
// attach the full chain:
//
//	logger.WarnContext(ctx, "health probe failed",
//	    slog.String("operation", "health.Aggregator.Run"),
//	    slog.String("probe_id", id),
//	    slog.Any("error", err),
//	)
//
// Request-scoped loggers set by the logging middleware already carry
// request_id; fetch them with FromContext. DOWN health reports go to the
// child logger returned by Channel(logger, "health").
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// ChannelKey is the attribute naming a log channel.
const ChannelKey = "logger"

type contextKey struct{}

// New creates a logger writing to w.
//
// level is one of debug, info, warn, or error in any letter case; anything
// else means info. At debug the source location is included. format "text"
// selects slog.TextHandler; every other value selects JSON.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Channel returns a child logger whose records carry logger=name.
func Channel(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(slog.String(ChannelKey, name))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	switch lvl {
	case slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError:
		return lvl
	default:
		return slog.LevelInfo
	}
}
