package logger

import (
	"io"
	"log/slog"
	"os"
)

const serviceName = "party-search"

// New returns the service logger: JSON on stdout, tagged with the service
// name and deployment environment.
func New(level slog.Level, environment string) *slog.Logger {
	return NewWithWriter(os.Stdout, level, environment)
}

func NewWithWriter(w io.Writer, level slog.Level, environment string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(
		slog.String("service", serviceName),
		slog.String("environment", environment),
	)
}
