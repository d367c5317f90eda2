// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/timekeeper/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogBuffer is a synchronized buffer for capturing log output in tests
type testLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer interface for the testLogBuffer
func (b *testLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// entries parses each line of the buffer as a JSON log record
func (b *testLogBuffer) entries(t *testing.T) []map[string]interface{} {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]interface{}
	for _, line := range strings.Split(b.buf.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		out = append(out, entry)
	}
	return out
}

// restoreDefault puts the original default logger back after the test
func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupWithWriterLevels(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		debugEnabled bool
		infoEnabled  bool
		warnEnabled  bool
	}{
		{name: "debug", level: "debug", debugEnabled: true, infoEnabled: true, warnEnabled: true},
		{name: "info", level: "info", infoEnabled: true, warnEnabled: true},
		{name: "warn uppercase", level: "WARN", warnEnabled: true},
		{name: "error", level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreDefault(t)
			buf := &testLogBuffer{}

			log, err := logger.SetupWithWriter(logger.LoggerConfig{Level: tt.level}, buf)
			require.NoError(t, err)
			require.NotNil(t, log)

			log.Debug("debug message")
			log.Info("info message")
			log.Warn("warn message")
			log.Error("error message")

			var messages []string
			for _, entry := range buf.entries(t) {
				messages = append(messages, entry["msg"].(string))
			}

			assert.Equal(t, tt.debugEnabled, slices.Contains(messages, "debug message"))
			assert.Equal(t, tt.infoEnabled, slices.Contains(messages, "info message"))
			assert.Equal(t, tt.warnEnabled, slices.Contains(messages, "warn message"))
			assert.True(t, slices.Contains(messages, "error message"))
		})
	}
}

func TestSetupInvalidLevelWarns(t *testing.T) {
	restoreDefault(t)
	buf := &testLogBuffer{}

	log, err := logger.SetupWithWriter(logger.LoggerConfig{Level: "verbose"}, buf)
	require.NoError(t, err)

	log.Debug("hidden")
	entries := buf.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "verbose", entries[0]["configured_level"])
	assert.Equal(t, "info", entries[0]["default_level"])
}

func TestSetupSetsDefault(t *testing.T) {
	restoreDefault(t)
	buf := &testLogBuffer{}

	_, err := logger.SetupWithWriter(logger.LoggerConfig{Level: "info"}, buf)
	require.NoError(t, err)

	slog.Info("through default", "component", "test")
	entries := buf.entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "through default", entries[0]["msg"])
	assert.Equal(t, "test", entries[0]["component"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{input: "debug", want: slog.LevelDebug, ok: true},
		{input: " Info ", want: slog.LevelInfo, ok: true},
		{input: "warn", want: slog.LevelWarn, ok: true},
		{input: "ERROR", want: slog.LevelError, ok: true},
		{input: "fatal", want: slog.LevelInfo, ok: false},
		{input: "", want: slog.LevelInfo, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
