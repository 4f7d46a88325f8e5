// Package terminal inspects the terminal the lock screen is started in:
// which emulator it is, whether it is interactive, how big it is and how
// many colors it can show. Detection reads the environment only.
package terminal

import (
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // Ghostty
	TermKitty              // Kitty
	TermWezTerm            // WezTerm
	TermITerm2             // iTerm2
	TermAlacritty          // Alacritty
	TermGNOME              // VTE-based (GNOME Terminal, Tilix)
	TermTmux               // tmux multiplexer
	TermScreen             // GNU Screen multiplexer
	TermVSCode             // VS Code integrated terminal
	TermEmacs              // Emacs vterm/eat
	TermConsole            // Linux virtual console
	TermGeneric            // anything else
)

var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermGNOME:     "vte",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermVSCode:    "vscode",
	TermEmacs:     "emacs",
	TermConsole:   "console",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsMouse reports whether tile clicks can be expected to work.
// Emacs terminals and the Linux console do not forward mouse events.
func (t Terminal) SupportsMouse() bool {
	switch t {
	case TermEmacs, TermConsole, TermUnknown:
		return false
	default:
		return true
	}
}

// Detect identifies the terminal emulator from environment variables,
// checking the most reliable signals first.
func Detect(lookupEnv func(string) (string, bool)) Terminal {
	get := func(k string) string {
		if lookupEnv == nil {
			return ""
		}
		v, _ := lookupEnv(k)
		return v
	}

	switch strings.ToLower(get("TERM_PROGRAM")) {
	case "ghostty":
		return TermGhostty
	case "kitty":
		return TermKitty
	case "wezterm":
		return TermWezTerm
	case "iterm.app":
		return TermITerm2
	case "vscode":
		return TermVSCode
	case "alacritty":
		return TermAlacritty
	case "tmux":
		return TermTmux
	}

	term := get("TERM")
	switch {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case term == "linux":
		return TermConsole
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	case strings.HasPrefix(term, "screen") && get("STY") != "":
		return TermScreen
	}

	switch {
	case get("KITTY_WINDOW_ID") != "":
		return TermKitty
	case get("ITERM_SESSION_ID") != "", get("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	case get("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case get("VTE_VERSION") != "":
		return TermGNOME
	case get("INSIDE_EMACS") != "":
		return TermEmacs
	case get("TMUX") != "":
		return TermTmux
	case get("STY") != "":
		return TermScreen
	}
	return TermGeneric
}
