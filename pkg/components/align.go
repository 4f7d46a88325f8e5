// Package components provides ANSI-aware text primitives and the block
// digit font used by the lock screen clock.
package components

// Align controls horizontal text alignment within a line.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// AlignText pads s to width according to a. Text wider than width is
// truncated.
func AlignText(s string, width int, a Align) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	switch a {
	case AlignCenter:
		return PadCenter(s, width)
	case AlignRight:
		return PadLeft(s, width)
	default:
		return PadRight(s, width)
	}
}

// AlignBlock applies AlignText to every line of a multi-line block.
func AlignBlock(lines []string, width int, a Align) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = AlignText(l, width, a)
	}
	return out
}
