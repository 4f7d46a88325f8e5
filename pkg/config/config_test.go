package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestReduceMotionTruthTable(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want bool
	}{
		{"no env no flag", nil, nil, false},
		{"env true", map[string]string{ReduceMotionEnv: "true"}, nil, true},
		{"env 1", map[string]string{ReduceMotionEnv: "1"}, nil, true},
		{"env TRUE", map[string]string{ReduceMotionEnv: "TRUE"}, nil, true},
		{"env yes", map[string]string{ReduceMotionEnv: "yes"}, nil, true},
		{"env YES", map[string]string{ReduceMotionEnv: "YES"}, nil, true},
		{"env FALSE", map[string]string{ReduceMotionEnv: "FALSE"}, nil, false},
		{"env mixed case", map[string]string{ReduceMotionEnv: "True"}, nil, false},
		{"env Yes", map[string]string{ReduceMotionEnv: "Yes"}, nil, false},
		{"env empty", map[string]string{ReduceMotionEnv: ""}, nil, false},
		{"other env var", map[string]string{"REDUCE_MOTION": "1"}, nil, false},
		{"reduce-motion flag", nil, []string{"--reduce-motion"}, true},
		{"no-animations flag", nil, []string{"-verbose", "--no-animations"}, true},
		{"single dash flag", nil, []string{"-reduce-motion"}, false},
		{"unrelated flag", nil, []string{"--verbose"}, false},
		{"env false flag present", map[string]string{ReduceMotionEnv: "0"}, []string{"--reduce-motion"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReduceMotion(envMap(tt.env), tt.args); got != tt.want {
				t.Errorf("ReduceMotion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReduceMotionNilLookup(t *testing.T) {
	if ReduceMotion(nil, nil) {
		t.Error("nil lookup and no args should be false")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Timing.ToastDelay.Duration != time.Second {
		t.Errorf("default toast delay = %v, want 1s", cfg.Timing.ToastDelay.Duration)
	}
	if cfg.Timing.ShimmerInterval.Duration != 1800*time.Millisecond {
		t.Errorf("default shimmer interval = %v, want 1.8s", cfg.Timing.ShimmerInterval.Duration)
	}
}

func TestLoadFromReaderTOML(t *testing.T) {
	const data = `
[general]
log_level = "debug"
timezone = "UTC"

[timing]
toast_delay = "2s"
shimmer_interval = "900ms"

[accessibility]
reduce_motion = true

[tiles]
labels = ["Терминал", "calculator"]
`
	cfg, err := LoadFromReader(strings.NewReader(data), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.General.LogLevel)
	}
	if cfg.Timing.ToastDelay.Duration != 2*time.Second {
		t.Errorf("toast delay = %v, want 2s", cfg.Timing.ToastDelay.Duration)
	}
	if cfg.Timing.ShimmerInterval.Duration != 900*time.Millisecond {
		t.Errorf("shimmer interval = %v", cfg.Timing.ShimmerInterval.Duration)
	}
	if cfg.Timing.ClockInterval.Duration != time.Second {
		t.Errorf("clock interval default lost: %v", cfg.Timing.ClockInterval.Duration)
	}
	if !cfg.Accessibility.ReduceMotion {
		t.Error("reduce_motion not decoded")
	}
	if want := []string{"Терминал", "calculator"}; !reflect.DeepEqual(cfg.TileLabels(), want) {
		t.Errorf("tiles = %v, want %v", cfg.TileLabels(), want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFromReaderYAML(t *testing.T) {
	const data = `
timing:
  toast_delay: 1500ms
theme:
  name: nord
tiles:
  preset: work
`
	cfg, err := LoadFromReader(strings.NewReader(data), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Timing.ToastDelay.Duration != 1500*time.Millisecond {
		t.Errorf("toast delay = %v", cfg.Timing.ToastDelay.Duration)
	}
	if cfg.Theme.Name != "nord" {
		t.Errorf("theme = %q", cfg.Theme.Name)
	}
	if got := cfg.TileLabels(); !reflect.DeepEqual(got, TilePreset("work")) {
		t.Errorf("tiles = %v", got)
	}
}

func TestLoadFromReaderEmptyYAML(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Timing.ToastDelay.Duration != time.Second {
		t.Errorf("expected defaults, got toast delay %v", cfg.Timing.ToastDelay.Duration)
	}
}

func TestLoadFromReaderRejectsBadDuration(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[timing]\ntoast_delay = \"soon\"\n"), FormatTOML)
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
	_, err = LoadFromReader(strings.NewReader("timing:\n  toast_delay: -1s\n"), FormatYAML)
	if err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Theme.Name != DefaultConfig().Theme.Name {
		t.Errorf("theme = %q", cfg.Theme.Name)
	}
}

func TestLoadFromFileByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("general:\n  log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn", cfg.General.LogLevel)
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, appName, "config.toml")
	if err := os.WriteFile(path, []byte("[theme]\nname = \"mono\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme.Name != "mono" {
		t.Errorf("theme = %q, want mono", cfg.Theme.Name)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LOCKSCREEN_THEME", "nord")
	t.Setenv("LOCKSCREEN_TOAST_DELAY", "3s")
	t.Setenv("LOCKSCREEN_TILES", "minimal")

	cfg, err := LoadFromReader(strings.NewReader("[tiles]\nlabels = [\"x\"]\n"), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Theme.Name != "nord" {
		t.Errorf("theme = %q", cfg.Theme.Name)
	}
	if cfg.Timing.ToastDelay.Duration != 3*time.Second {
		t.Errorf("toast delay = %v", cfg.Timing.ToastDelay.Duration)
	}
	if !reflect.DeepEqual(cfg.TileLabels(), TilePreset("minimal")) {
		t.Errorf("tiles = %v", cfg.TileLabels())
	}
}

func TestEnvOverrideBadToastDelay(t *testing.T) {
	t.Setenv("LOCKSCREEN_TOAST_DELAY", "later")
	if _, err := LoadFromReader(strings.NewReader(""), FormatTOML); err == nil {
		t.Fatal("expected error for invalid LOCKSCREEN_TOAST_DELAY")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero clock interval", func(c *Config) { c.Timing.ClockInterval.Duration = 0 }},
		{"zero shimmer interval", func(c *Config) { c.Timing.ShimmerInterval.Duration = 0 }},
		{"zero toast delay", func(c *Config) { c.Timing.ToastDelay.Duration = 0 }},
		{"bad log level", func(c *Config) { c.General.LogLevel = "loud" }},
		{"empty tile label", func(c *Config) { c.Tiles.Labels = []string{"a", ""} }},
		{"bad timezone", func(c *Config) { c.General.Timezone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestTilePresetFallback(t *testing.T) {
	if !reflect.DeepEqual(TilePreset("bogus"), TilePreset("home")) {
		t.Error("unknown preset should fall back to home")
	}
	for _, name := range TilePresetNames() {
		if len(TilePreset(name)) == 0 {
			t.Errorf("preset %q is empty", name)
		}
	}
}

func TestCapture(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.Timezone = "UTC"

	st, err := Capture(cfg, envMap(nil), []string{"--no-animations"})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if !st.ReduceMotion {
		t.Error("expected ReduceMotion from flag")
	}
	if st.Location != time.UTC {
		t.Errorf("location = %v, want UTC", st.Location)
	}
	if st.ToastDelay != time.Second || st.ShimmerInterval != 1800*time.Millisecond || st.ClockInterval != time.Second {
		t.Errorf("timings = %v %v %v", st.ToastDelay, st.ShimmerInterval, st.ClockInterval)
	}

	// Later config mutation must not leak into the captured tiles.
	cfg.Tiles.Labels = []string{"changed"}
	if st.Tiles[0] == "changed" {
		t.Error("Startup.Tiles aliases the config slice")
	}
}

func TestCaptureFileSwitch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Accessibility.ReduceMotion = true
	st, err := Capture(cfg, envMap(nil), nil)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if !st.ReduceMotion {
		t.Error("accessibility.reduce_motion should enable reduced motion")
	}
}

func TestThemesDirFollowsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := ThemesDir(), filepath.Join(dir, appName, "themes"); got != want {
		t.Errorf("ThemesDir() = %q, want %q", got, want)
	}
}
