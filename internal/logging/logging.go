// Package logging builds the slog loggers used by the CLI and the HTTP server.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a level name to a slog level. Unknown names map to info.
// "trace" is debug with source locations enabled.
func ParseLevel(name string) (level slog.Level, withSource bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return slog.LevelDebug, true
	case "debug":
		return slog.LevelDebug, false
	case "warn", "warning":
		return slog.LevelWarn, false
	case "error":
		return slog.LevelError, false
	default:
		return slog.LevelInfo, false
	}
}

// TextHandler returns a charmbracelet/log handler writing to w (stderr when nil).
func TextHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	lvl, withSource := ParseLevel(level)
	return log.NewWithOptions(w, log.Options{
		Level:           log.Level(lvl),
		ReportCaller:    withSource,
		ReportTimestamp: lvl <= slog.LevelDebug,
		Prefix:          "stockout",
	})
}

// JSONHandler returns a slog JSON handler writing to w (stderr when nil).
func JSONHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	lvl, withSource := ParseLevel(level)
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: withSource,
	})
}

// New builds a logger for the given level and format.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return slog.New(TextHandler(level, w)), nil
	case FormatJSON:
		return slog.New(JSONHandler(level, w)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Setup installs a stderr logger as the slog default.
func Setup(level, format string) (*slog.Logger, error) {
	logger, err := New(level, format, nil)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
