package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-health-aggregator/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders returns one attribute per header, sorted by name, for debug
// request logging. Values of headers named in logging.SensitiveHeaders are
// masked. Repeated values are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		value := redactedValue
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
