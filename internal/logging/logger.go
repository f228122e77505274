// Package logging builds the structured loggers used by the masthead CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/masthead/pkg/types"
)

// ParseLevel maps a config log level (debug, info, warn, error) to a slog
// level. An empty string means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case types.LogLevelDebug:
		return slog.LevelDebug, nil
	case "", types.LogLevelInfo:
		return slog.LevelInfo, nil
	case types.LogLevelWarn:
		return slog.LevelWarn, nil
	case types.LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", types.ErrLogLevelUnknown, level)
	}
}

// NewLogger returns a logger writing to w at the given level. JSON output
// is used when jsonFormat is set, human-readable text otherwise.
func NewLogger(w io.Writer, level slog.Level, jsonFormat bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		// Add source code location for debug output
		AddSource: level <= slog.LevelDebug,
	}
	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
