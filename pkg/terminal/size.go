package terminal

import (
	"strconv"

	"github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// Size is the terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

// DefaultSize is used when nothing better is known.
var DefaultSize = Size{Cols: 80, Rows: 24}

// GetSize returns the size of the terminal on fd. It tries, in order, the
// TIOCGWINSZ ioctl, x/term, and the COLUMNS/LINES variables, and falls
// back to DefaultSize.
func GetSize(fd uintptr, lookupEnv func(string) (string, bool)) Size {
	if ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ); err == nil && ws.Col > 0 && ws.Row > 0 {
		return Size{Cols: int(ws.Col), Rows: int(ws.Row)}
	}
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return Size{Cols: w, Rows: h}
	}
	return sizeFromEnv(lookupEnv)
}

func sizeFromEnv(lookupEnv func(string) (string, bool)) Size {
	return Size{
		Cols: envInt(lookupEnv, "COLUMNS", DefaultSize.Cols),
		Rows: envInt(lookupEnv, "LINES", DefaultSize.Rows),
	}
}

// envInt reads a positive integer from the named variable, or returns
// fallback.
func envInt(lookupEnv func(string) (string, bool), name string, fallback int) int {
	if lookupEnv == nil {
		return fallback
	}
	v, ok := lookupEnv(name)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
