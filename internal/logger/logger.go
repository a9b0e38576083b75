// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// defaultLogger never writes to stdout, which carries the interactive
// transcript; records go to the state file and, optionally, stderr.
var defaultLogger *slog.Logger

// Options controls where log records go and at which level.
type Options struct {
	Level    slog.Level
	ToFile   bool
	ToStderr bool
}

// LogFilePath determines the path for the application log file based on XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "console-controller", "app.log"), nil
}

// openLogFile creates the log directory if needed and opens the file for appending.
func openLogFile() (*os.File, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", logDir, err)
	}
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", logFilePath, err)
	}
	return file, nil
}

// Init configures the default logger. A log file that cannot be opened is
// reported on stderr and skipped; the loop must keep running without logs.
func Init(opts Options) {
	var writers []io.Writer

	if opts.ToFile {
		file, err := openLogFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v. File logging disabled.\n", err)
		} else {
			// Closed by the OS on exit.
			writers = append(writers, file)
		}
	}
	if opts.ToStderr {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	defaultLogger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
}

// SetLogger replaces the default logger instance, e.g. in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger makes logging before Init a no-op instead of a nil dereference.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
