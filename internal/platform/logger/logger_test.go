package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natid/internal/platform/config"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, config.Server{LogLevel: slog.LevelInfo, LogFormat: config.LogFormatJSON})
		log.Info("started", "addr", ":8080")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "started", entry["msg"])
		assert.Equal(t, ":8080", entry["addr"])
	})

	t.Run("text format and level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, config.Server{LogLevel: slog.LevelWarn, LogFormat: config.LogFormatText})
		log.Info("hidden")
		log.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})
}
