package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chiliososada/skills-extractor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("extracted document", zap.String("path", "a.xlsx"))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "extracted document", entry["msg"])
	assert.Equal(t, "a.xlsx", entry["path"])
	assert.Contains(t, entry, "ts")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(config.LogConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Debug("candidate")
	assert.Contains(t, buf.String(), "candidate")
	assert.Contains(t, buf.String(), "debug")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := NewWithWriter(config.LogConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTestLogger(t *testing.T) {
	tl := NewTestLogger(zapcore.InfoLevel)
	tl.Debug("skipped")
	tl.Info("first")
	tl.Warn("second", zap.Int("n", 2))

	assert.Equal(t, []string{"first", "second"}, tl.Messages())
	entries := tl.Filter("second")
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["n"])

	tl.Reset()
	assert.Empty(t, tl.Messages())
}
