package main

import (
	"io"
	"log/slog"
)

// NewLogger creates a text logger at the given level.
func NewLogger(writer io.Writer, level slog.Level) *slog.Logger {
	opts := slog.HandlerOptions{
		AddSource: level <= slog.LevelDebug,
		Level:     level,
	}
	return slog.New(slog.NewTextHandler(writer, &opts))
}
