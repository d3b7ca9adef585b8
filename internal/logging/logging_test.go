package logging

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "text", &buf)

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("output = %q, want it to contain 'level=INFO'", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("output = %q, want it to contain 'hello'", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "JSON", &buf)

	logger.Info("hello")

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("output = %q, want JSON message", buf.String())
	}
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New("", "text", &buf)

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at the default level, got %q", buf.String())
	}

	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("warn should pass the default level, got %q", buf.String())
	}
}

func TestNew_RedactsDescription(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "text", &buf)

	logger.Debug("task added", "title", "dentist", "description", "root canal on tuesday")

	out := buf.String()
	if strings.Contains(out, "root canal") {
		t.Fatalf("description leaked into logs: %q", out)
	}
	if !strings.Contains(out, "dentist") {
		t.Fatalf("title missing from logs: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelWarn,
	}

	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsLevel(t *testing.T) {
	for _, level := range slices.Concat(Levels, []string{"WARNING", " Info "}) {
		if !IsLevel(level) {
			t.Errorf("IsLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "bogus", "trace"} {
		if IsLevel(level) {
			t.Errorf("IsLevel(%q) = true, want false", level)
		}
	}
}
