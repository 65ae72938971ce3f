// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the pyconfig resolver.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on
// *Logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing
// the application to add helper methods without modifying the upstream
// type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g.
// "resolver", "cli") writing JSON entries to os.Stderr. The role field
// makes it easy to filter entries from different components.
func NewLogger(role string) *Logger {
	return NewLoggerTo(os.Stderr, role)
}

// NewLoggerTo is NewLogger with an explicit output writer.
func NewLoggerTo(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Level returns a child logger clamped to the given level name. An
// unknown name leaves the level unchanged.
func (l *Logger) Level(name string) *Logger {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return l
	}
	return &Logger{l.Logger.Level(lvl)}
}
