package logger

import (
	"log/slog"
	"os"
)

// NewConsoleLogger returns a logger writing human-readable text lines to
// stdout. This is the sink used during development and by the CLI.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &slogLogger{logger: slog.New(handler)}
}
