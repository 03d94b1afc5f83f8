package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partstock/internal/pkg/logger"
)

func TestLogger_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter("debug", &buf)

	log.Info("Estoque ajustado.", map[string]interface{}{"stock_id": "abc", "delta": -3})
	log.Error("Falha no DB.", errors.New("timeout"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry logger.LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "Estoque ajustado.", entry.Message)
	assert.Equal(t, "abc", entry.Fields["stock_id"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "timeout", entry.Error)
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter("warn", &buf)

	log.Debug("ignorado", nil)
	log.Info("ignorado", nil)
	log.Warn("registrado", nil)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
