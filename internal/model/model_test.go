package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	d := Duration{Hours: 1, Minutes: 30}
	assert.Equal(t, 5400, d.TotalSeconds())
	assert.Equal(t, 90, d.TotalMinutes())
	assert.Equal(t, "1h 30m", d.String())

	assert.Equal(t, "1 minute", Duration{Minutes: 1}.String())
	assert.Equal(t, "0 minutes", Duration{}.String())
	assert.Equal(t, "5 minutes", DefaultDuration().String())
}

func TestDurationValid(t *testing.T) {
	assert.True(t, Duration{Hours: 23, Minutes: 59}.Valid())
	assert.False(t, Duration{Hours: 24}.Valid())
	assert.False(t, Duration{Minutes: 60}.Valid())
	assert.False(t, Duration{Minutes: -1}.Valid())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "05:00", FormatClock(300))
	assert.Equal(t, "00:59", FormatClock(59))
	assert.Equal(t, "01:00:01", FormatClock(3601))
	assert.Equal(t, "00:00", FormatClock(-3))
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, Duration{Hours: 0, Minutes: 5}, DefaultDuration())
	assert.Equal(t, ActionAlarm, DefaultAction().Type)
	assert.Equal(t, "Automated Task", ActionTask.Label())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.TickInterval())
	assert.Equal(t, 5*time.Second, cfg.AnnouncementGrace())
	assert.Equal(t, 2*time.Second, cfg.SplashDelay())
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
timer:
  announcement_grace_sec: 2
speech:
  command: espeak-ng
notifications:
  enabled: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.AnnouncementGrace())
	assert.Equal(t, "espeak-ng", cfg.Speech.Command)
	assert.False(t, cfg.Notifications.Enabled)
	// untouched keys keep their defaults
	assert.Equal(t, 1000, cfg.Timer.TickIntervalMs)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("KRONAUT_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultAppConfig()
	cfg.UI.SplashDelayMs = 0

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), loaded.SplashDelay())
}
