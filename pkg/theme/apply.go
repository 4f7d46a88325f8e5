package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Clock     lipgloss.Style
	Date      lipgloss.Style
	Dim       lipgloss.Style
	Tile      lipgloss.Style
	TileFocus lipgloss.Style
	TileOpen  lipgloss.Style
	Shade     lipgloss.Style
	Toast     lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t Theme) Styles {
	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Tile)).
		Foreground(lipgloss.Color(t.Foreground)).
		Padding(0, 1)

	return Styles{
		Clock:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Clock)),
		Date:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		Tile:      tile,
		TileFocus: tile.BorderForeground(lipgloss.Color(t.Accent)).Bold(true),
		TileOpen:  tile.BorderForeground(lipgloss.Color(t.ShimmerPeak)),
		Shade: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(t.ShadeBorder)).
			Foreground(lipgloss.Color(t.Foreground)),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ToastFG)).
			Background(lipgloss.Color(t.ToastBG)).
			Padding(0, 2),
		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
	}
}

const (
	// shimmerStride is how many cells the highlight moves per phase step.
	shimmerStride = 6
	// shimmerRadius is the half-width of the highlight in cells.
	shimmerRadius = 8
	shimmerGlyph  = "━"
)

// ShimmerBar renders a width-cell bar with its highlight placed by phase.
// With animate false the bar is drawn flat in the base color, independent
// of phase.
func ShimmerBar(t Theme, phase uint32, width int, animate bool) string {
	if width <= 0 {
		return ""
	}
	if !animate {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ShimmerBase)).
			Render(strings.Repeat(shimmerGlyph, width))
	}

	base, errBase := colorful.Hex(t.ShimmerBase)
	peak, errPeak := colorful.Hex(t.ShimmerPeak)
	if errBase != nil || errPeak != nil {
		return strings.Repeat(shimmerGlyph, width)
	}

	pos := shimmerPosition(phase, width)
	var b strings.Builder
	for i := 0; i < width; i++ {
		c := base.BlendLab(peak, shimmerIntensity(i, pos, width)).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(shimmerGlyph))
	}
	return b.String()
}

// shimmerPosition maps a phase to the highlight's center cell.
func shimmerPosition(phase uint32, width int) int {
	return int((uint64(phase) * shimmerStride) % uint64(width))
}

// shimmerIntensity returns 0..1 for cell i given the highlight at pos. The
// bar wraps, so distance is measured around the ends.
func shimmerIntensity(i, pos, width int) float64 {
	d := i - pos
	if d < 0 {
		d = -d
	}
	if width-d < d {
		d = width - d
	}
	if d >= shimmerRadius {
		return 0
	}
	return 1 - float64(d)/shimmerRadius
}
