// Package logging provides the structured, leveled logger used by the
// cmd/ entrypoints and by the radical planner's dropped-note warning:
// Info/Warn/Error/Debug calls taking a message plus
// a flat bag of key-value fields, backed by log/slog.
package logging

import (
	"log/slog"
	"os"
)

// Fields is a bag of structured key-value context attached to a log
// line, e.g. chart path, line count, pointer id.
type Fields map[string]any

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Configure sets the minimum level by name (debug, info, warn, error),
// defaulting to info for an unrecognized name.
func Configure(levelName string) {
	var level slog.Level
	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func attrs(fields Fields) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

// Info logs an informational message with structured fields.
func Info(msg string, fields Fields) {
	logger.Info(msg, attrs(fields)...)
}

// Warn logs a warning message with structured fields.
func Warn(msg string, fields Fields) {
	logger.Warn(msg, attrs(fields)...)
}

// Debug logs a debug message with structured fields.
func Debug(msg string, fields Fields) {
	logger.Debug(msg, attrs(fields)...)
}

// Error logs an error with its message and structured fields.
func Error(msg string, err error, fields Fields) {
	a := attrs(fields)
	a = append(a, "error", err)
	logger.Error(msg, a...)
}
