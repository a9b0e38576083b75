// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePathUsesStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	path, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "console-controller", "app.log"), path)
}

func TestInitWritesToFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	t.Cleanup(func() { SetLogger(nil) })

	Init(Options{Level: slog.LevelDebug, ToFile: true})
	Debug("dispatch", "command", "greet")

	data, err := os.ReadFile(filepath.Join(dir, "console-controller", "app.log"))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "dispatch", rec["msg"])
	assert.Equal(t, "greet", rec["command"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { SetLogger(nil) })

	Info("hidden")
	Debug("hidden")
	Warn("shown")
	Error("also shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"msg":"shown"`)
	assert.Contains(t, string(lines[1]), `"msg":"also shown"`)
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(nil) })

	assert.NotPanics(t, func() {
		Info("nobody listens")
		Error("still fine")
	})
}
