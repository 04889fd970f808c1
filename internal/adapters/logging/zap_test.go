package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesJSONFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "da.log")
	logger, closeLog, err := New(Options{Path: path})
	require.NoError(t, err)

	logger.Debug("dropped below info")
	logger.Info("workflow settled", zap.String("module", "upload"), zap.Uint64("version", 3))
	require.NoError(t, closeLog())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	var lines []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "workflow settled", lines[0]["message"])
	assert.Equal(t, "upload", lines[0]["module"])
	assert.NotEmpty(t, lines[0]["timestamp"])
}

func TestNewVerboseWritesConsole(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	logger, closeLog, err := New(Options{Verbose: true, Console: &console})
	require.NoError(t, err)

	logger.Debug("workflow started", zap.String("operation", "ask"))
	require.NoError(t, closeLog())

	assert.Contains(t, console.String(), "workflow started")
	assert.Contains(t, console.String(), "DEBUG")
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	t.Parallel()

	logger, closeLog, err := New(Options{})
	require.NoError(t, err)
	logger.Info("nowhere")
	require.NoError(t, closeLog())
}

func TestWatermillAdapterForwardsFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	adapter := NewWatermillAdapter(zap.New(core)).With(watermill.LogFields{"topic": "session.changed"})

	adapter.Info("subscribed", watermill.LogFields{"subscriber": 1})
	adapter.Error("publish failed", errors.New("closed"), nil)
	adapter.Trace("tick", nil)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "watermill", entries[0].ContextMap()["module"])
	assert.Equal(t, "session.changed", entries[0].ContextMap()["topic"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "closed", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
}
