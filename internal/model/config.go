package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// TimerConfig holds countdown settings.
type TimerConfig struct {
	// TickIntervalMs is the wall-clock gap between ticks. Each tick
	// removes exactly one second regardless of this value.
	TickIntervalMs int `mapstructure:"tick_interval_ms" yaml:"tick_interval_ms"`

	// AnnouncementGraceSec is how long an announcement may play before
	// the app returns to the start screen.
	AnnouncementGraceSec int `mapstructure:"announcement_grace_sec" yaml:"announcement_grace_sec"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	SplashDelayMs int `mapstructure:"splash_delay_ms" yaml:"splash_delay_ms"`
}

// SpeechConfig controls the text-to-speech process.
type SpeechConfig struct {
	// Command is the TTS binary. Empty selects "say" on macOS and
	// "espeak" elsewhere.
	Command string  `mapstructure:"command" yaml:"command"`
	Rate    float64 `mapstructure:"rate" yaml:"rate"`
}

// NotificationConfig controls desktop notifications.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// StorageConfig locates the session history database.
type StorageConfig struct {
	DatabasePath  string `mapstructure:"database_path" yaml:"database_path"`
	RetentionDays int    `mapstructure:"retention_days" yaml:"retention_days"`
}

// LogConfig controls the application log file.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	Path  string `mapstructure:"path" yaml:"path"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Timer         TimerConfig        `mapstructure:"timer" yaml:"timer"`
	UI            UIConfig           `mapstructure:"ui" yaml:"ui"`
	Speech        SpeechConfig       `mapstructure:"speech" yaml:"speech"`
	Notifications NotificationConfig `mapstructure:"notifications" yaml:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage" yaml:"storage"`
	Log           LogConfig          `mapstructure:"log" yaml:"log"`
}

// TickInterval returns the configured tick interval, falling back to one
// second for non-positive values.
func (c AppConfig) TickInterval() time.Duration {
	if c.Timer.TickIntervalMs <= 0 {
		return time.Second
	}
	return time.Duration(c.Timer.TickIntervalMs) * time.Millisecond
}

// AnnouncementGrace returns the delay between speaking and resetting.
func (c AppConfig) AnnouncementGrace() time.Duration {
	if c.Timer.AnnouncementGraceSec < 0 {
		return 0
	}
	return time.Duration(c.Timer.AnnouncementGraceSec) * time.Second
}

// SplashDelay returns how long the splash screen stays up.
func (c AppConfig) SplashDelay() time.Duration {
	if c.UI.SplashDelayMs < 0 {
		return 0
	}
	return time.Duration(c.UI.SplashDelayMs) * time.Millisecond
}

// configDir returns ~/.config/kronaut, or the working directory when the
// home directory cannot be resolved.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "kronaut")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/kronaut/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	dir := configDir()
	return &AppConfig{
		Timer: TimerConfig{
			TickIntervalMs:       1000,
			AnnouncementGraceSec: 5,
		},
		UI: UIConfig{
			SplashDelayMs: 2000,
		},
		Speech: SpeechConfig{
			Rate: 0.8,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DatabasePath:  filepath.Join(dir, "history.db"),
			RetentionDays: 90,
		},
		Log: LogConfig{
			Level: "warn",
			Path:  filepath.Join(dir, "kronaut.log"),
		},
	}
}

func newViper(path string) *viper.Viper {
	def := DefaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// KRONAUT_LOG_LEVEL overrides log.level, and so on.
	v.SetEnvPrefix("kronaut")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("timer.tick_interval_ms", def.Timer.TickIntervalMs)
	v.SetDefault("timer.announcement_grace_sec", def.Timer.AnnouncementGraceSec)
	v.SetDefault("ui.splash_delay_ms", def.UI.SplashDelayMs)
	v.SetDefault("speech.command", def.Speech.Command)
	v.SetDefault("speech.rate", def.Speech.Rate)
	v.SetDefault("notifications.enabled", def.Notifications.Enabled)
	v.SetDefault("storage.database_path", def.Storage.DatabasePath)
	v.SetDefault("storage.retention_days", def.Storage.RetentionDays)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.path", def.Log.Path)

	return v
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// A missing file is not an error: defaults and KRONAUT_* environment
// variables still apply.
func LoadConfig(path string) (*AppConfig, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Storage.DatabasePath = expandHome(cfg.Storage.DatabasePath)
	cfg.Log.Path = expandHome(cfg.Log.Path)

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("timer", cfg.Timer)
	v.Set("ui", cfg.UI)
	v.Set("speech", cfg.Speech)
	v.Set("notifications", cfg.Notifications)
	v.Set("storage", cfg.Storage)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
