package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/lockscreen/pkg/theme"
	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

// recorder implements Events and records every call.
type recorder struct {
	opened  []string
	toggles int
}

func (r *recorder) OpenApp(label string) bool {
	r.opened = append(r.opened, label)
	return true
}

func (r *recorder) ToggleShade() bool {
	r.toggles++
	return true
}

// helper to send a message through Update and return the updated Model.
func tuiUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// helper to create a Model with three tiles.
func newTestTuiModel(t *testing.T) (Model, *recorder) {
	t.Helper()
	r := &recorder{}
	m := New([]string{"Терминал", "Браузер", "calculator"}, r, theme.Get("default"))
	t.Cleanup(m.Close)
	return m, r
}

func TestNewCreatesCorrectInitialState(t *testing.T) {
	m, _ := newTestTuiModel(t)

	if m.Focused() != 0 {
		t.Errorf("expected focused=0, got %d", m.Focused())
	}
	if m.SearchMode() {
		t.Error("expected searchMode=false")
	}
	if m.Ready() {
		t.Error("expected ready=false")
	}
}

func TestWindowSizeMsgSetsReady(t *testing.T) {
	m, _ := newTestTuiModel(t)

	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width() != 120 || m.Height() != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.Width(), m.Height())
	}
	if !m.Ready() {
		t.Error("expected ready=true after WindowSizeMsg")
	}
}

func TestSnapshotMsgReplacesSnapshot(t *testing.T) {
	m, _ := newTestTuiModel(t)

	m, cmd := tuiUpdate(m, SnapshotMsg{Snapshot: view.Snapshot{TimeText: "09:41", ToastVisible: true}})
	if cmd != nil {
		t.Error("expected nil command for SnapshotMsg")
	}
	if got := m.Snapshot(); got.TimeText != "09:41" || !got.ToastVisible {
		t.Errorf("snapshot not applied: %+v", got)
	}
}

func TestRightCyclesFocusAndWraps(t *testing.T) {
	m, _ := newTestTuiModel(t)

	for i, want := range []int{1, 2, 0} {
		m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRight})
		if m.Focused() != want {
			t.Errorf("step %d: expected focused=%d, got %d", i, want, m.Focused())
		}
	}
}

func TestLeftCyclesFocusBackward(t *testing.T) {
	m, _ := newTestTuiModel(t)

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Focused() != 2 {
		t.Errorf("expected focused=2 after left from 0, got %d", m.Focused())
	}
}

func TestEnterOpensFocusedTile(t *testing.T) {
	m, r := newTestTuiModel(t)

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(r.opened) != 1 || r.opened[0] != "Браузер" {
		t.Errorf("expected [Браузер], got %v", r.opened)
	}
}

func TestDigitOpensTileByIndex(t *testing.T) {
	m, r := newTestTuiModel(t)

	m, _ = tuiUpdate(m, runes("3"))
	if len(r.opened) != 1 || r.opened[0] != "calculator" {
		t.Errorf("expected [calculator], got %v", r.opened)
	}
	if m.Focused() != 2 {
		t.Errorf("expected focus to follow the opened tile, got %d", m.Focused())
	}

	// Out of range digits are ignored.
	_, _ = tuiUpdate(m, runes("9"))
	if len(r.opened) != 1 {
		t.Errorf("expected no extra activation, got %v", r.opened)
	}
}

func TestSTogglesShade(t *testing.T) {
	m, r := newTestTuiModel(t)

	m, _ = tuiUpdate(m, runes("s"))
	_, _ = tuiUpdate(m, runes("s"))
	if r.toggles != 2 {
		t.Errorf("expected 2 toggles, got %d", r.toggles)
	}
}

func TestQQuits(t *testing.T) {
	m, _ := newTestTuiModel(t)

	m, cmd := tuiUpdate(m, runes("q"))
	if cmd == nil {
		t.Error("expected non-nil quit command after q")
	}
	if !m.Quitting() {
		t.Error("expected quitting=true")
	}
	if m.View() != "" {
		t.Error("expected empty view while quitting")
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m, _ := newTestTuiModel(t)

	_, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("expected non-nil quit command after Ctrl+C")
	}

	m, _ = tuiUpdate(m, runes("/"))
	_, cmd = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("expected non-nil quit command after Ctrl+C in search mode")
	}
}

func TestSlashEntersSearchMode(t *testing.T) {
	m, _ := newTestTuiModel(t)

	m, _ = tuiUpdate(m, runes("/"))
	if !m.SearchMode() {
		t.Error("expected searchMode=true after /")
	}
}

func TestQInSearchModeTypesQ(t *testing.T) {
	m, r := newTestTuiModel(t)

	m, _ = tuiUpdate(m, runes("/"))
	m, cmd := tuiUpdate(m, runes("q"))
	if cmd != nil {
		t.Error("expected nil command (no quit) when typing q in search mode")
	}
	if m.SearchQuery() != "q" {
		t.Errorf("expected query 'q', got %q", m.SearchQuery())
	}

	// Digits and s are text too.
	m, _ = tuiUpdate(m, runes("s1"))
	if m.SearchQuery() != "qs1" {
		t.Errorf("expected query 'qs1', got %q", m.SearchQuery())
	}
	if len(r.opened) != 0 || r.toggles != 0 {
		t.Error("search input must not trigger actions")
	}
}

func TestSearchEnterOpensFirstMatch(t *testing.T) {
	m, r := newTestTuiModel(t)

	m, _ = tuiUpdate(m, runes("/"))
	m, _ = tuiUpdate(m, runes("брау"))
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(r.opened) != 1 || r.opened[0] != "Браузер" {
		t.Errorf("expected [Браузер], got %v", r.opened)
	}
	if m.SearchMode() {
		t.Error("expected search mode to end after enter")
	}
}

func TestSearchBackspaceAndEscape(t *testing.T) {
	m, r := newTestTuiModel(t)

	m, _ = tuiUpdate(m, runes("/"))
	m, _ = tuiUpdate(m, runes("тер"))
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.SearchQuery() != "те" {
		t.Errorf("expected 'те' after backspace, got %q", m.SearchQuery())
	}

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.SearchMode() || m.SearchQuery() != "" {
		t.Error("expected escape to leave search mode and clear the query")
	}
	if len(r.opened) != 0 {
		t.Errorf("escape must not open anything, got %v", r.opened)
	}
}

func TestFilterTilesByLabelAndID(t *testing.T) {
	tiles := []string{"Терминал", "Браузер", "calculator"}

	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{0, 1, 2}},
		{"ТЕРМ", []int{0}},
		{"browser", []int{1}},
		{"calc", []int{2}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		got := filterTiles(tiles, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("filterTiles(%q) = %v, want %v", tt.query, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("filterTiles(%q) = %v, want %v", tt.query, got, tt.want)
				break
			}
		}
	}
}

func TestRenderSearchBarFitsWithinWidth(t *testing.T) {
	bar := renderSearchBar("терминал", 6)
	if n := len([]rune(bar)); n != 6 {
		t.Errorf("expected 6 cells, got %d (%q)", n, bar)
	}
	if !strings.HasPrefix(bar, "/") {
		t.Errorf("expected '/' prefix, got %q", bar)
	}
	if renderSearchBar("x", 0) != "" {
		t.Error("expected empty bar for zero width")
	}
}

func TestViewBeforeWindowSizeMsg(t *testing.T) {
	m, _ := newTestTuiModel(t)
	if out := m.View(); out != "Initializing..." {
		t.Errorf("expected 'Initializing...' before size, got %q", out)
	}
}

func TestViewShowsClockToastAndTiles(t *testing.T) {
	m, _ := newTestTuiModel(t)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = tuiUpdate(m, SnapshotMsg{Snapshot: view.Snapshot{
		TimeText:     "09:41",
		DateText:     "Вт, 12 мар",
		ToastText:    "Открыто: Браузер",
		ToastVisible: true,
		ReduceMotion: true,
	}})

	out := m.View()
	for _, want := range []string{"Вт, 12 мар", "Открыто: Браузер", "Терминал", "calculator"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewHidesToastWhenNotVisible(t *testing.T) {
	m, _ := newTestTuiModel(t)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = tuiUpdate(m, SnapshotMsg{Snapshot: view.Snapshot{ToastText: "Открыто: Браузер"}})

	if strings.Contains(m.View(), "Открыто") {
		t.Error("hidden toast must not render")
	}
}

func TestSearchModeRendersSearchBar(t *testing.T) {
	m, _ := newTestTuiModel(t)
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = tuiUpdate(m, runes("/"))
	m, _ = tuiUpdate(m, runes("бр"))

	if !strings.Contains(m.View(), "/бр_") {
		t.Error("expected search bar with query in output")
	}
}

func TestRenderFrameShade(t *testing.T) {
	snap := view.Snapshot{
		TimeText:        "12:00",
		ShadeOpen:       true,
		AppVersion:      "0.1.0",
		RuntimePlatform: "linux/amd64",
		HostText:        "fedora 41",
	}
	out := RenderFrame(snap, nil, theme.Get("mono"), 80, 24)
	for _, want := range []string{"0.1.0", "linux/amd64", "fedora 41"} {
		if !strings.Contains(out, want) {
			t.Errorf("shade missing %q", want)
		}
	}

	snap.ShadeOpen = false
	if strings.Contains(RenderFrame(snap, nil, theme.Get("mono"), 80, 24), "linux/amd64") {
		t.Error("closed shade must not render runtime info")
	}
}

func TestRenderFrameZeroSize(t *testing.T) {
	if RenderFrame(view.Snapshot{}, nil, theme.Get("default"), 0, 10) != "" {
		t.Error("expected empty frame for zero width")
	}
}

func TestInitReturnsNil(t *testing.T) {
	m, _ := newTestTuiModel(t)
	if m.Init() != nil {
		t.Error("expected Init() to return nil")
	}
}
