package logger

import (
	"log/slog"
	"os"
)

// Logger is the application logger handed to services.
type Logger struct {
	*slog.Logger
}

// New creates a text logger at the given level writing to stderr, so log
// lines never interleave with command output on stdout.
func New(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// Discard returns a logger that drops everything. Used as the default
// when a service is constructed without one.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}
