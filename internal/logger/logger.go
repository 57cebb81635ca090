// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout fraenkctl.
//
// The CLI's stdout carries the rendered report (and must stay pipeable in
// JSON mode), so diagnostic logs go to a file next to the executable instead.
// Every entry carries a per-run "run_id" field so one invocation's entries
// can be correlated.
package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewClientLogger constructs a *Logger for the given role label writing JSON
// entries to a "logs" file next to the executable, falling back to stderr if
// the file cannot be opened. level is a zerolog level name ("debug", "info",
// ...); unknown names fall back to info.
func NewClientLogger(role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	// Open log file near the executable
	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	w := os.Stderr
	if logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		w = logFile
	}

	logger := zerolog.New(w).With().
		Str("role", role).
		Str("run_id", uuid.NewString()).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}
