// Package config provides configuration management for neck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/xvierd/neck-cli/internal/domain"
)

// defaultDataDir is written to new config files and expanded on load.
const defaultDataDir = "~/.neck"

// Config holds all configuration for the neck application.
type Config struct {
	Routine       RoutineConfig      `mapstructure:"routine"`
	Sound         SoundConfig        `mapstructure:"sound"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Log           LogConfig          `mapstructure:"log"`
	Timer         TimerConfig        `mapstructure:"timer"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// RoutineConfig selects the routine to run.
type RoutineConfig struct {
	// File is a YAML routine. Empty means the built-in routine.
	File string `mapstructure:"file"`
}

// SoundConfig holds audible cue settings.
type SoundConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// TimerConfig holds countdown display settings.
type TimerConfig struct {
	Tick Duration `mapstructure:"tick"`
}

// Palette is one color scheme for the TUI.
type Palette struct {
	Accent  string `mapstructure:"accent"`
	Text    string `mapstructure:"text"`
	Muted   string `mapstructure:"muted"`
	Done    string `mapstructure:"done"`
	Caution string `mapstructure:"caution"`
	Border  string `mapstructure:"border"`
}

// ThemeConfig holds the light and dark palettes.
type ThemeConfig struct {
	Dark  Palette `mapstructure:"dark"`
	Light Palette `mapstructure:"light"`
}

// Palette returns the colors for the given theme.
func (c ThemeConfig) Palette(t domain.Theme) Palette {
	if t == domain.ThemeLight {
		return c.Light
	}
	return c.Dark
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		Dark: Palette{
			Accent:  "#7DD3FC",
			Text:    "#E5E7EB",
			Muted:   "#6B7280",
			Done:    "#4ADE80",
			Caution: "#FBBF24",
			Border:  "#374151",
		},
		Light: Palette{
			Accent:  "#0369A1",
			Text:    "#111827",
			Muted:   "#6B7280",
			Done:    "#15803D",
			Caution: "#B45309",
			Border:  "#D1D5DB",
		},
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Sound: SoundConfig{
			Enabled: true,
			Volume:  domain.DefaultToneVolume,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir,
		},
		Log: LogConfig{
			Level: "info",
		},
		Timer: TimerConfig{
			Tick: Duration(100 * time.Millisecond),
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from configPath, creating the file with
// defaults if it does not exist.
func LoadFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dataDir, err := expandHome(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.Storage.DataDir = dataDir

	if cfg.Routine.File != "" {
		if cfg.Routine.File, err = expandHome(cfg.Routine.File); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath as TOML.
func SaveTo(configPath string, cfg *Config) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set all values
	v.Set("routine.file", cfg.Routine.File)
	v.Set("sound.enabled", cfg.Sound.Enabled)
	v.Set("sound.volume", cfg.Sound.Volume)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("log.level", cfg.Log.Level)
	v.Set("timer.tick", cfg.Timer.Tick.String())
	setPalette(v, "theme.dark", cfg.Theme.Dark)
	setPalette(v, "theme.light", cfg.Theme.Light)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".neck", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "neck.db")
}

// GetLogPath returns the path to the log file.
func GetLogPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "neck.log")
}

// TickInterval returns the countdown tick, falling back to 100ms.
func (c *Config) TickInterval() time.Duration {
	if c.Timer.Tick <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Timer.Tick)
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("routine.file", "")
	v.SetDefault("sound.enabled", defaults.Sound.Enabled)
	v.SetDefault("sound.volume", defaults.Sound.Volume)
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("storage.data_dir", defaultDataDir)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("timer.tick", defaults.Timer.Tick.String())

	// Theme defaults
	for prefix, p := range map[string]Palette{
		"theme.dark":  defaults.Theme.Dark,
		"theme.light": defaults.Theme.Light,
	} {
		v.SetDefault(prefix+".accent", p.Accent)
		v.SetDefault(prefix+".text", p.Text)
		v.SetDefault(prefix+".muted", p.Muted)
		v.SetDefault(prefix+".done", p.Done)
		v.SetDefault(prefix+".caution", p.Caution)
		v.SetDefault(prefix+".border", p.Border)
	}
}

func setPalette(v *viper.Viper, prefix string, p Palette) {
	v.Set(prefix+".accent", p.Accent)
	v.Set(prefix+".text", p.Text)
	v.Set(prefix+".muted", p.Muted)
	v.Set(prefix+".done", p.Done)
	v.Set(prefix+".caution", p.Caution)
	v.Set(prefix+".border", p.Border)
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" {
		path = defaultDataDir
	}
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
