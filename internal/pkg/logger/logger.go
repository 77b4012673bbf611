// Package logger is the logging facade of the inventory service. Handlers,
// services and repositories depend on the Logger interface; the concrete
// sink (stdout text or a rotated JSON file) is picked from configuration at
// startup.
package logger

import (
	"log/slog"
	"os"
)

// Logger is the variadic interface the rest of the service logs through.
// Arguments are concatenated fmt.Sprint style, so call sites read like
// log.Info("Published construction ", slug).
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// slogLogger adapts a slog.Logger to the variadic interface. Both sinks
// share it; only the handler differs.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal writes the message at error level and exits the process.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic writes the message at error level, then panics with it.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
