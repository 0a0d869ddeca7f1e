package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPathJSON(t *testing.T) {
	var buf bytes.Buffer
	result := NewLoggerWithPath(Config{Level: "debug", Format: FormatJSON, Output: &buf})
	defer func() { _ = result.Close() }()

	logger := ComponentLogger(result.Logger, "report")
	logger.Debug().Str("entity", "Muster GmbH").Msg("building report")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "report", entry["component"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "building report", entry["message"])
	assert.False(t, result.UsingFile)
}

func TestNewLoggerWithPathFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footprint.log")
	result := NewLoggerWithPath(Config{Level: "info", File: path})

	result.Logger.Info().Msg("hello")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close())

	assert.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNewLoggerWithPathFallback(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing-dir", "footprint.log")
	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, File: path, Output: &buf})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)

	result.Logger.Info().Msg("still logged")
	assert.Contains(t, buf.String(), "still logged")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")

	// No logger stored: disabled logger, must not panic.
	FromContext(context.Background()).Info().Msg("dropped")
}

func TestTraceID(t *testing.T) {
	id := NewTraceID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	_, ok := TraceIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithTraceID(context.Background(), id)
	got, ok := TraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
	assert.NotEqual(t, id, GetOrGenerateTraceID(context.Background()))
}
