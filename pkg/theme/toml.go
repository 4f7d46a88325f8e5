package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name  string    `toml:"name"`
	Base  tomlBase  `toml:"base"`
	Lock  tomlLock  `toml:"lock"`
	Toast tomlToast `toml:"toast"`
}

type tomlBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type tomlLock struct {
	Clock       string `toml:"clock"`
	ShimmerBase string `toml:"shimmer_base"`
	ShimmerPeak string `toml:"shimmer_peak"`
	Tile        string `toml:"tile"`
	ShadeBorder string `toml:"shade_border"`
}

type tomlToast struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Clock:       tt.Lock.Clock,
		ShimmerBase: tt.Lock.ShimmerBase,
		ShimmerPeak: tt.Lock.ShimmerPeak,
		Tile:        tt.Lock.Tile,
		ShadeBorder: tt.Lock.ShadeBorder,
		ToastFG:     tt.Toast.Foreground,
		ToastBG:     tt.Toast.Background,
	}

	if err := validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadDir registers every *.toml theme in dir and returns their names. A
// missing directory is not an error. Files that fail to parse are reported
// together after the valid ones have been registered.
func LoadDir(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var (
		names []string
		errs  []error
	)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t, err := LoadFromTOML(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(p), err))
			continue
		}
		Register(t)
		names = append(names, t.Name)
	}
	return names, errors.Join(errs...)
}

// validate checks that all required color fields are present and valid hex.
func validate(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := []struct {
		name, value string
	}{
		{"base.background", t.Background},
		{"base.foreground", t.Foreground},
		{"base.dim", t.Dim},
		{"base.accent", t.Accent},
		{"lock.clock", t.Clock},
		{"lock.shimmer_base", t.ShimmerBase},
		{"lock.shimmer_peak", t.ShimmerPeak},
		{"lock.tile", t.Tile},
		{"lock.shade_border", t.ShadeBorder},
		{"toast.foreground", t.ToastFG},
		{"toast.background", t.ToastBG},
	}

	for _, f := range colorFields {
		if f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.name)
		}
		if !hexColorRegex.MatchString(f.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f.value, f.name)
		}
	}
	return nil
}
