package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger returns a logger writing JSON lines to a size-rotated file.
// Rotated archives are gzip-compressed; maxSize is in megabytes, maxAge in
// days.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &slogLogger{logger: slog.New(handler)}
}
