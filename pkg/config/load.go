package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// appName is the directory name used under the XDG base directories.
const appName = "lockscreen"

// Format is the encoding of a config file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatForPath picks the decoder from the file extension; anything other
// than .yaml or .yml is read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/lockscreen/config.toml
//  2. $XDG_CONFIG_HOME/lockscreen/config.yaml
//  3. ~/.config/lockscreen/config.toml (and .yaml) when XDG_CONFIG_HOME is set
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadFromReader(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader, format Format) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logFile := filepath.Join(xdgCacheHome(home), appName, appName+".log")

	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			LogFile:  logFile,
			PIDFile:  filepath.Join(runtimeDir(home), appName+".pid"),
		},
		Timing: TimingConfig{
			ClockInterval:   Duration{1 * time.Second},
			ShimmerInterval: Duration{1800 * time.Millisecond},
			ToastDelay:      Duration{1 * time.Second},
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Tiles: TilesConfig{
			Preset: "home",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
// The reduce-motion variable is not read here; see Capture.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LOCKSCREEN_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("LOCKSCREEN_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("LOCKSCREEN_TILES"); v != "" {
		cfg.Tiles.Preset = v
		cfg.Tiles.Labels = nil
	}
	if v := os.Getenv("LOCKSCREEN_TOAST_DELAY"); v != "" {
		if err := cfg.Timing.ToastDelay.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("LOCKSCREEN_TOAST_DELAY: %w", err)
		}
	}
	return nil
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var dirs []string

	xdg := xdgConfigHome(home)
	dirs = append(dirs, filepath.Join(xdg, appName))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		dirs = append(dirs, filepath.Join(defaultXDG, appName))
	}

	var paths []string
	for _, d := range dirs {
		paths = append(paths, filepath.Join(d, "config.toml"), filepath.Join(d, "config.yaml"))
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}

// ThemesDir returns the directory user themes are loaded from.
func ThemesDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgConfigHome(home), appName, "themes")
}

// runtimeDir returns XDG_RUNTIME_DIR, or the cache directory when unset.
func runtimeDir(home string) string {
	if v := os.Getenv("XDG_RUNTIME_DIR"); v != "" {
		return filepath.Join(v, appName)
	}
	return filepath.Join(xdgCacheHome(home), appName)
}
