// Package logger builds the component loggers used across the application.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// ErrEmptyName is returned when a logger is requested without a component name.
var ErrEmptyName = errors.New("logger name must not be empty")

const colorReset = "\033[0m"

// New returns a text logger that tags every record with a coloured component name.
func New(name, color string, w io.Writer) (*slog.Logger, error) {
	return NewWithLevel(name, color, w, slog.LevelInfo)
}

// NewWithLevel is New with an explicit minimum level.
func NewWithLevel(name, color string, w io.Writer, level slog.Level) (*slog.Logger, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	if color != "" {
		name = color + name + colorReset
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("component", name)), nil
}

// ParseLevel maps a level name such as "debug" or "WARN" to a slog.Level.
// Unknown names fall back to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
