// Package tui is the bubbletea rendering layer of the lock screen. It owns
// no state of its own beyond focus and input mode: everything it draws comes
// from view.Snapshot messages, and every user action is forwarded to an
// Events sink that runs it on the controller's loop.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/lockscreen/pkg/theme"
	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

// SnapshotMsg delivers a new view model snapshot to the program.
type SnapshotMsg struct {
	Snapshot view.Snapshot
}

// Events receives user actions. Implementations must not block for long;
// they are called from the bubbletea update loop.
type Events interface {
	OpenApp(label string) bool
	ToggleShade() bool
}

// Model is the bubbletea model for the lock screen.
type Model struct {
	snap   view.Snapshot
	tiles  []string
	events Events

	theme  theme.Theme
	styles theme.Styles
	keys   keyMap
	help   help.Model
	zones  *zone.Manager

	width  int
	height int
	ready  bool

	focused    int
	searchMode bool
	query      string
	quitting   bool
}

// New creates a Model for the given tile labels.
func New(tiles []string, events Events, th theme.Theme) Model {
	h := help.New()
	st := theme.NewStyles(th)
	h.Styles.ShortKey = st.HelpKey
	h.Styles.ShortDesc = st.HelpDesc
	h.Styles.ShortSeparator = st.HelpDesc

	return Model{
		tiles:  tiles,
		events: events,
		theme:  th,
		styles: st,
		keys:   defaultKeyMap(),
		help:   h,
		zones:  zone.New(),
	}
}

// Init implements tea.Model. Snapshots arrive from the controller, so
// there is nothing to start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case SnapshotMsg:
		m.snap = msg.Snapshot
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.Open):
		m.open(m.focused)
	case key.Matches(msg, m.keys.Digit):
		m.open(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Shade):
		m.events.ToggleShade()
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.query = ""
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.searchMode = false
		m.query = ""
	case tea.KeyEnter:
		if matches := filterTiles(m.tiles, m.query); len(matches) > 0 {
			m.focused = matches[0]
			m.open(matches[0])
		}
		m.searchMode = false
		m.query = ""
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i := range m.tiles {
		if z := m.zones.Get(tileZoneID(i)); z != nil && z.InBounds(msg) {
			m.focused = i
			m.open(i)
			break
		}
	}
	return m, nil
}

func (m *Model) cycleFocus(delta int) {
	n := len(m.tiles)
	if n == 0 {
		return
	}
	m.focused = (m.focused + delta + n) % n
}

// open forwards activation of tile i; out-of-range indices are ignored.
func (m *Model) open(i int) {
	if i < 0 || i >= len(m.tiles) {
		return
	}
	m.focused = i
	m.events.OpenApp(m.tiles[i])
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	f := frame{
		snap:    m.snap,
		tiles:   m.tiles,
		focused: m.focused,
		theme:   m.theme,
		styles:  m.styles,
		width:   m.width,
		height:  m.height,
		mark:    m.zones.Mark,
	}
	if m.searchMode {
		f.footer = renderSearchBar(m.query, m.width)
	} else {
		f.footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return m.zones.Scan(f.render())
}

// Close releases the zone manager's background worker.
func (m Model) Close() {
	m.zones.Close()
}

// Accessors for tests and embedding.

func (m Model) Snapshot() view.Snapshot { return m.snap }
func (m Model) Focused() int            { return m.focused }
func (m Model) SearchMode() bool        { return m.searchMode }
func (m Model) SearchQuery() string     { return m.query }
func (m Model) Quitting() bool          { return m.quitting }
func (m Model) Ready() bool             { return m.ready }
func (m Model) Width() int              { return m.width }
func (m Model) Height() int             { return m.height }
