package clilog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, level, tt.input)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorContains(t, err, `invalid log-level "verbose"`)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "json", "warn")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "input", "てすと")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "てすと", record["input"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "text", "debug")
	require.NoError(t, err)

	logger.Debug("hello", "n", 1)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "n=1")
	assert.NotContains(t, buf.String(), "\x1b[", "no color when not a terminal")

	buf.Reset()
	logger, err = New(&buf, "logfmt", "info")
	require.NoError(t, err)
	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewInvalidFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", "info")
	assert.ErrorContains(t, err, `invalid log-fmt "xml"`)
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := Init(&buf, "logfmt", "info")
	require.NoError(t, err)
	assert.Same(t, logger, slog.Default())
}
