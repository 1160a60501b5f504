package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level string) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(level))
	return slog.New(newConsoleHandler(buf, levelVar, false))
}

func TestConsoleHandlerLine(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "info")
	logger.Info("uploading audio", "stage", "transcribe", "job", "9f2c", "seconds", 12.5)

	line := buf.String()
	if !strings.Contains(line, " INFO transcribe: uploading audio") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "job=9f2c") || !strings.Contains(line, "seconds=12.5") {
		t.Errorf("attrs missing: %q", line)
	}
	if strings.Contains(line, "stage=") {
		t.Errorf("stage attr should become prefix: %q", line)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("visible")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info leaked past warn level")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("warn record missing")
	}
}

func TestConsoleHandlerQuoting(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "info")
	logger.Info("msg", "path", "/tmp/with space/file.srt")
	if !strings.Contains(buf.String(), `path="/tmp/with space/file.srt"`) {
		t.Errorf("line = %q", buf.String())
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "info").WithGroup("clip").With("id", "abc")
	logger.Info("probed")
	if !strings.Contains(buf.String(), "clip.id=abc") {
		t.Errorf("line = %q", buf.String())
	}
}

func TestConsoleHandlerColor(t *testing.T) {
	levelVar := new(slog.LevelVar)
	var buf bytes.Buffer
	handler := newConsoleHandler(&buf, levelVar, true)
	record := slog.Record{Level: slog.LevelError, Message: "boom"}
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[31mERROR\x1b[0m") {
		t.Errorf("no color escape in %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}
	for input, want := range tests {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
