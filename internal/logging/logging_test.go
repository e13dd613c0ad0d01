package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func withCapturedLogger(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := logger
	logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
	t.Cleanup(func() { logger = prev })
	return buf
}

func TestInfoIncludesFields(t *testing.T) {
	buf := withCapturedLogger(t, slog.LevelInfo)
	Info("planned chart", Fields{"lines": 3})

	out := buf.String()
	if !strings.Contains(out, "planned chart") || !strings.Contains(out, "lines=3") {
		t.Fatalf("missing message or field in log output: %q", out)
	}
}

func TestErrorIncludesUnderlyingError(t *testing.T) {
	buf := withCapturedLogger(t, slog.LevelInfo)
	Error("plan failed", errors.New("pointer exhausted"), Fields{"line": 2})

	out := buf.String()
	if !strings.Contains(out, "pointer exhausted") {
		t.Fatalf("expected underlying error text in output: %q", out)
	}
}

func TestDebugSuppressedBelowConfiguredLevel(t *testing.T) {
	buf := withCapturedLogger(t, slog.LevelInfo)
	Debug("verbose detail", nil)

	if buf.Len() != 0 {
		t.Fatalf("debug line should be suppressed at info level, got %q", buf.String())
	}
}

func TestConfigureRecognizesLevelNames(t *testing.T) {
	prev := logger
	defer func() { logger = prev }()

	Configure("debug")
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Fatal("Configure(\"debug\") should enable debug-level logging")
	}

	Configure("error")
	if logger.Enabled(nil, slog.LevelWarn) {
		t.Fatal("Configure(\"error\") should suppress warn-level logging")
	}
}
