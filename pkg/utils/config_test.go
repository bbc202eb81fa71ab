package utils

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", config.App.Port)
	assert.Equal(t, 10*time.Second, config.App.ShutdownTimeout)
	assert.Equal(t, "17:00", config.Booking.OpenTime)
	assert.Equal(t, "04:00", config.Booking.CloseTime)
	assert.False(t, config.Booking.EnforceUniqueSlot)
	assert.True(t, config.Database.AutoSchema)
	assert.Equal(t, int32(10), config.Database.MaxConns)
}

func TestLoadConfigFromEnvFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(".env", []byte("PORT=9100\nSLOT_OPEN_TIME=16:00\nDB_NAME=padel\n"), 0o600))

	t.Setenv("BOOKING_ENFORCE_UNIQUE_SLOT", "true")
	t.Setenv("SLOT_OPEN_TIME", "18:00")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9100", config.App.Port)
	assert.Equal(t, "padel", config.Database.Name)
	assert.Equal(t, "18:00", config.Booking.OpenTime)
	assert.True(t, config.Booking.EnforceUniqueSlot)
}

func TestLoadConfigRejectsUnknownTimezone(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	config, err := LoadConfig()
	assert.Nil(t, config)
	assert.ErrorContains(t, err, `invalid APP_TIMEZONE "Mars/Olympus"`)
}

func TestLoadConfigTimezone(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", config.App.Location().String())
}

func TestAppConfigLocation(t *testing.T) {
	assert.Equal(t, time.Local, AppConfig{}.Location())
	assert.Equal(t, time.Local, AppConfig{Timezone: "Local"}.Location())
	assert.Equal(t, time.Local, AppConfig{Timezone: "Mars/Olympus"}.Location())
	assert.Equal(t, "UTC", AppConfig{Timezone: "UTC"}.Location().String())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
