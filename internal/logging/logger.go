// Package logging constructs the leveled logger used by the deckgen CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info" and "debug" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing text records to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
