package components

import "strings"

// BigTextHeight is the number of lines BigText renders.
const BigTextHeight = 5

// bigGlyphs is a 3x5 block font for the characters a clock needs.
var bigGlyphs = map[rune][BigTextHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
	' ': {" ", " ", " ", " ", " "},
}

// BigText renders s in the block font, one space between glyphs.
// Characters outside the font are skipped.
func BigText(s string) []string {
	var rows [BigTextHeight][]string
	for _, r := range s {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	out := make([]string, BigTextHeight)
	for i, parts := range rows {
		out[i] = strings.Join(parts, " ")
	}
	return out
}

// BigTextWidth returns the visible width of BigText(s).
func BigTextWidth(s string) int {
	lines := BigText(s)
	return VisibleLen(lines[0])
}
