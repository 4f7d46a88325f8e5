// Package theme holds the lock screen color palettes and turns them into
// lipgloss styles.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the lock screen.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1a1b26"
	Foreground string
	Dim        string // secondary text: date, runtime info
	Accent     string // focused tile, help keys

	// Lock screen
	Clock       string
	ShimmerBase string // shimmer bar at rest
	ShimmerPeak string // shimmer highlight
	Tile        string // unfocused tile border
	ShadeBorder string
	ToastFG     string
	ToastBG     string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a theme under its lowercase name, replacing any theme of
// the same name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
