package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xvierd/neck-cli/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Sound.Enabled {
		t.Error("expected sound enabled by default")
	}
	if cfg.Sound.Volume != domain.DefaultToneVolume {
		t.Errorf("expected default volume %v, got %v", domain.DefaultToneVolume, cfg.Sound.Volume)
	}
	if cfg.Routine.File != "" {
		t.Errorf("expected built-in routine by default, got %q", cfg.Routine.File)
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("expected 100ms tick, got %v", cfg.TickInterval())
	}
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".neck"); cfg.Storage.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.Storage.DataDir, want)
	}
	if cfg.Theme.Dark.Accent != DefaultThemeConfig().Dark.Accent {
		t.Errorf("dark accent = %q", cfg.Theme.Dark.Accent)
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("tick = %v", cfg.TickInterval())
	}
}

func TestLoadFrom_ReadsValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[routine]
file = "/etc/neck/office.yaml"

[sound]
enabled = false
volume = 0.5

[storage]
data_dir = "` + filepath.ToSlash(dir) + `"

[log]
level = "debug"

[timer]
tick = "250ms"

[theme.light]
accent = "#FF0000"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Routine.File != "/etc/neck/office.yaml" {
		t.Errorf("Routine.File = %q", cfg.Routine.File)
	}
	if cfg.Sound.Enabled || cfg.Sound.Volume != 0.5 {
		t.Errorf("Sound = %+v", cfg.Sound)
	}
	if !cfg.Notifications.Enabled {
		t.Error("missing key should fall back to default")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.TickInterval() != 250*time.Millisecond {
		t.Errorf("tick = %v", cfg.TickInterval())
	}
	if got := cfg.Theme.Palette(domain.ThemeLight).Accent; got != "#FF0000" {
		t.Errorf("light accent = %q", got)
	}
	if got := cfg.Theme.Palette(domain.ThemeLight).Text; got != DefaultThemeConfig().Light.Text {
		t.Errorf("light text = %q, want default", got)
	}
	if GetDBPath(cfg) != filepath.Join(dir, "neck.db") {
		t.Errorf("GetDBPath() = %q", GetDBPath(cfg))
	}
	if !strings.HasSuffix(GetLogPath(cfg), "neck.log") {
		t.Errorf("GetLogPath() = %q", GetLogPath(cfg))
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Sound.Enabled = false
	cfg.Timer.Tick = Duration(time.Second)
	cfg.Storage.DataDir = t.TempDir()

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Sound.Enabled {
		t.Error("sound.enabled not persisted")
	}
	if loaded.TickInterval() != time.Second {
		t.Errorf("tick = %v", loaded.TickInterval())
	}
}

func TestThemeConfig_Palette(t *testing.T) {
	c := DefaultThemeConfig()
	if c.Palette(domain.ThemeDark) != c.Dark {
		t.Error("dark palette mismatch")
	}
	if c.Palette(domain.ThemeLight) != c.Light {
		t.Error("light palette mismatch")
	}
	if c.Palette(domain.Theme("")) != c.Dark {
		t.Error("unknown theme should use dark")
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if time.Duration(d) != 90*time.Second {
		t.Errorf("got %v", time.Duration(d))
	}
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("expected error for invalid duration")
	}
}
