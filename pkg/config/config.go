package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the on-disk configuration.
type Config struct {
	General       GeneralConfig       `toml:"general" yaml:"general"`
	Timing        TimingConfig        `toml:"timing" yaml:"timing"`
	Accessibility AccessibilityConfig `toml:"accessibility" yaml:"accessibility"`
	Theme         ThemeConfig         `toml:"theme" yaml:"theme"`
	Tiles         TilesConfig         `toml:"tiles" yaml:"tiles"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level" yaml:"log_level"`
	LogFile  string `toml:"log_file" yaml:"log_file"`

	// Timezone is an IANA name; empty means the local zone.
	Timezone string `toml:"timezone" yaml:"timezone"`

	// PIDFile guards against a second interactive instance for the same
	// user. Empty disables the check.
	PIDFile string `toml:"pid_file" yaml:"pid_file"`
}

// TimingConfig holds the controller cadences.
type TimingConfig struct {
	ClockInterval   Duration `toml:"clock_interval" yaml:"clock_interval"`
	ShimmerInterval Duration `toml:"shimmer_interval" yaml:"shimmer_interval"`

	// ToastDelay is how long a toast stays visible. Earlier builds used 2s.
	ToastDelay Duration `toml:"toast_delay" yaml:"toast_delay"`
}

// AccessibilityConfig holds accessibility switches.
type AccessibilityConfig struct {
	ReduceMotion bool `toml:"reduce_motion" yaml:"reduce_motion"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name" yaml:"name"`
}

// TilesConfig selects the app tiles shown on the home screen. Labels, when
// set, replace the preset's labels.
type TilesConfig struct {
	Preset string   `toml:"preset" yaml:"preset"`
	Labels []string `toml:"labels" yaml:"labels"`
}

// TileLabels returns the effective tile labels.
func (c *Config) TileLabels() []string {
	if len(c.Tiles.Labels) > 0 {
		return c.Tiles.Labels
	}
	return TilePreset(c.Tiles.Preset)
}

// Location resolves General.Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.General.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.General.Timezone, err)
	}
	return loc, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Timing.ClockInterval.Duration <= 0:
		return errors.New("timing.clock_interval must be positive")
	case c.Timing.ShimmerInterval.Duration <= 0:
		return errors.New("timing.shimmer_interval must be positive")
	case c.Timing.ToastDelay.Duration <= 0:
		return errors.New("timing.toast_delay must be positive")
	}
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("general.log_level %q: want debug, info, warn or error", c.General.LogLevel)
	}
	if len(c.TileLabels()) == 0 {
		return errors.New("no app tiles configured")
	}
	for i, l := range c.TileLabels() {
		if l == "" {
			return fmt.Errorf("tiles.labels[%d] is empty", i)
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
