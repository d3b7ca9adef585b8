// Package logging builds the diagnostic logger shared by the CLI and the
// task store.
//
//	logger := logging.New("warn", "text", os.Stderr)
//
// Diagnostic logs go to stderr and stay quiet by default. Messages meant for
// the person at the menu are printed by the CLI, not logged.
package logging

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// IsLevel reports whether level names one of Levels. "warning" is accepted
// for warn.
func IsLevel(level string) bool {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}
	return slices.Contains(Levels, name)
}

// New creates a configured *slog.Logger.
//
// Unrecognized levels default to warn. The "json" format selects
// slog.NewJSONHandler; anything else uses slog.NewTextHandler.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newRedactAttr keeps task descriptions out of log output. Descriptions are
// free text and often personal.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("description"),
	)
}
