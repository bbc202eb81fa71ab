package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerWritesRotatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewLogger(AppConfig{Name: "padel-test", LogPath: dir})
	require.NoError(t, err)

	logger.Info("Booking confirmed", zap.String("booking_id", "booking_1"))
	logger.Debug("dropped at info level")
	_ = logger.Sync()

	raw, err := os.ReadFile(filepath.Join(dir, "padel-test.log"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Booking confirmed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "padel-test", entry["app"])
	assert.Equal(t, "booking_1", entry["booking_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLoggerStdoutOnly(t *testing.T) {
	logger, err := NewLogger(AppConfig{Debug: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewLoggerRejectsUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := NewLogger(AppConfig{LogPath: filepath.Join(file, "logs")})
	assert.ErrorContains(t, err, "create log dir")
}
