package trajwriter

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Level is the shared, mutable log level for every logger this package
// builds. Callers may adjust it at runtime, e.g. from a CLI flag.
var Level = new(slog.LevelVar)

// NewLogger builds a *slog.Logger that fans every record out to a
// human-readable text handler on os.Stderr and, when auditLog is non-nil, a
// JSON handler writing a durable audit trail of the same records.
func NewLogger(auditLog io.Writer) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: Level}),
	}
	if auditLog != nil {
		handlers = append(handlers, slog.NewJSONHandler(auditLog, &slog.HandlerOptions{Level: Level}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}
