package utils

import (
	"io"
	"log/slog"
	"strings"
)

// LoggerOptions configures the process logger
type LoggerOptions struct {
	Service   string
	Env       string
	Level     string
	AddSource bool
}

// NewLogger builds a JSON logger tagged with service and env and installs it
// as the slog default.
func NewLogger(w io.Writer, opts LoggerOptions) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: opts.AddSource,
	})

	base := slog.New(h).With(
		"service", opts.Service,
		"env", opts.Env,
	)

	slog.SetDefault(base)
	return base
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
