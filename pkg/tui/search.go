package tui

import (
	"strings"

	"gitlab.com/tinyland/lab/lockscreen/pkg/components"
	"gitlab.com/tinyland/lab/lockscreen/pkg/home"
)

// renderSearchBar renders the search input that replaces the help line
// while search mode is active: a "/" prefix, the query and a cursor.
func renderSearchBar(query string, width int) string {
	if width <= 0 {
		return ""
	}
	display := "/" + query + "_"
	return components.PadRight(components.Truncate(display, width), width)
}

// filterTiles returns the indices of tiles whose label or canonical app id
// contains query (case-insensitive). An empty query returns all indices.
func filterTiles(tiles []string, query string) []int {
	if query == "" {
		indices := make([]int, len(tiles))
		for i := range tiles {
			indices[i] = i
		}
		return indices
	}

	lower := strings.ToLower(query)
	var result []int
	for i, label := range tiles {
		l := strings.ToLower(label)
		id := strings.ToLower(home.Normalize(label))
		if strings.Contains(l, lower) || strings.Contains(id, lower) {
			result = append(result, i)
		}
	}
	return result
}
