package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(test *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "warn", "json")
	logger.Info("skipped")
	logger.Warn("kept", "client", "Client 1")

	var record map[string]any
	require.NoError(test, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(test, "kept", record["msg"])
	assert.Equal(test, "Client 1", record["client"])
}

func TestNew_Text(test *testing.T) {
	buf := &bytes.Buffer{}
	New(buf, "unknown", "").Info("hello")
	assert.Contains(test, buf.String(), "msg=hello")
}

func TestParseLevel(test *testing.T) {
	assert.Equal(test, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(test, slog.LevelInfo, parseLevel("info"))
	assert.Equal(test, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(test, slog.LevelError, parseLevel("error"))
	assert.Equal(test, slog.LevelInfo, parseLevel(""))
}
