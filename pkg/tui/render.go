package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/lockscreen/pkg/components"
	"gitlab.com/tinyland/lab/lockscreen/pkg/home"
	"gitlab.com/tinyland/lab/lockscreen/pkg/theme"
	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

const (
	// shimmerWidthMax caps the shimmer bar so it stays under the clock.
	shimmerWidthMax = 48
	tileZonePrefix  = "tile-"
)

func tileZoneID(i int) string {
	return fmt.Sprintf("%s%d", tileZonePrefix, i)
}

// frame is everything needed to draw one screen.
type frame struct {
	snap    view.Snapshot
	tiles   []string
	focused int
	theme   theme.Theme
	styles  theme.Styles
	width   int
	height  int
	footer  string
	// mark wraps a rendered tile so mouse clicks can be resolved to it.
	mark func(id, s string) string
}

// RenderFrame draws snap once at the given size without interactive
// decorations. It backs the one-shot mode used when stdout is not a TTY.
func RenderFrame(snap view.Snapshot, tiles []string, th theme.Theme, width, height int) string {
	f := frame{
		snap:    snap,
		tiles:   tiles,
		focused: -1,
		theme:   th,
		styles:  theme.NewStyles(th),
		width:   width,
		height:  height,
	}
	return f.render()
}

func (f frame) render() string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}

	var sections []string
	if f.snap.ShadeOpen {
		sections = append(sections, f.renderShade())
	}

	sections = append(sections, f.renderClock(), f.renderShimmer())

	if f.snap.ToastVisible {
		sections = append(sections, f.styles.Toast.Render(f.snap.ToastText))
	} else {
		sections = append(sections, "")
	}

	sections = append(sections, f.renderTiles())

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	bodyH := f.height
	if f.footer != "" {
		bodyH--
	}
	out := lipgloss.Place(f.width, bodyH, lipgloss.Center, lipgloss.Center, body)
	if f.footer != "" {
		out += "\n" + lipgloss.PlaceHorizontal(f.width, lipgloss.Center, f.footer)
	}
	return out
}

// renderClock draws the time in block digits when there is room, falling
// back to plain text on narrow or short terminals.
func (f frame) renderClock() string {
	date := f.styles.Date.Render(f.snap.DateText)
	if components.BigTextWidth(f.snap.TimeText) > f.width || f.height < components.BigTextHeight+8 {
		return lipgloss.JoinVertical(lipgloss.Center, f.styles.Clock.Render(f.snap.TimeText), date)
	}
	big := strings.Join(components.BigText(f.snap.TimeText), "\n")
	return lipgloss.JoinVertical(lipgloss.Center, f.styles.Clock.Render(big), "", date)
}

func (f frame) renderShimmer() string {
	w := f.width - 4
	if w > shimmerWidthMax {
		w = shimmerWidthMax
	}
	return theme.ShimmerBar(f.theme, f.snap.ShimmerPhase, w, !f.snap.ReduceMotion)
}

func (f frame) renderTiles() string {
	if len(f.tiles) == 0 {
		return ""
	}
	rendered := make([]string, len(f.tiles))
	for i, label := range f.tiles {
		style := f.styles.Tile
		switch {
		case f.snap.AppOpen && home.Normalize(label) == f.snap.CurrentAppID:
			style = f.styles.TileOpen
		case i == f.focused:
			style = f.styles.TileFocus
		}
		text := label
		if i < 9 {
			text = fmt.Sprintf("%d %s", i+1, label)
		}
		tile := style.Render(text)
		if f.mark != nil {
			tile = f.mark(tileZoneID(i), tile)
		}
		rendered[i] = tile
	}

	// Wrap tiles into rows that fit the terminal width.
	var rows []string
	var row []string
	rowW := 0
	for _, t := range rendered {
		w := lipgloss.Width(t)
		if len(row) > 0 && rowW+w > f.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowW = nil, 0
		}
		row = append(row, t)
		rowW += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// renderShade draws the notification shade: build and host details.
func (f frame) renderShade() string {
	lines := []string{
		"lockscreen " + f.snap.AppVersion,
		f.snap.RuntimePlatform,
	}
	if f.snap.HostText != "" {
		lines = append(lines, f.snap.HostText)
	}
	if f.snap.AppOpen {
		lines = append(lines, "app: "+f.snap.CurrentAppID)
	}
	if f.snap.ReduceMotion {
		lines = append(lines, f.styles.Dim.Render("reduced motion"))
	}

	w := f.width - 2
	if w < 1 {
		w = 1
	}
	return f.styles.Shade.Width(w).Render(strings.Join(components.AlignBlock(lines, w, components.AlignCenter), "\n"))
}
