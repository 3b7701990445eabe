// Package logging wires log/slog JSON logging for the accelerator.
// All components receive a *slog.Logger handle; there is no package-level
// default so concurrent agents never share logger state.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a JSON logger writing to w, filtered at the supplied level.
// Unknown level strings fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Nop returns a logger that discards everything; used in tests.
func Nop() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
