package home

import (
	"log/slog"

	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

// app is one row of the canonical app table.
type app struct {
	slug    string
	label   string // localized display label
	keyword string // English keyword
}

var apps = []app{
	{slug: "terminal", label: "Терминал", keyword: "terminal"},
	{slug: "browser", label: "Браузер", keyword: "browser"},
	{slug: "files", label: "Файлы", keyword: "files"},
	{slug: "settings", label: "Настройки", keyword: "settings"},
	{slug: "music", label: "Музыка", keyword: "music"},
	{slug: "mail", label: "Почта", keyword: "mail"},
}

var (
	slugByLabel = map[string]string{}
	labelBySlug = map[string]string{}
)

func init() {
	for _, a := range apps {
		slugByLabel[a.label] = a.slug
		slugByLabel[a.keyword] = a.slug
		labelBySlug[a.slug] = a.label
	}
}

// Normalize maps a tile label to its canonical app id. Both the localized
// label and the English keyword of a known app map to the same slug; any
// other label is returned unchanged. Matching is exact.
func Normalize(label string) string {
	if slug, ok := slugByLabel[label]; ok {
		return slug
	}
	return label
}

// LabelFor returns the localized label of a canonical app id, or the id
// itself when it is not in the table.
func LabelFor(slug string) string {
	if l, ok := labelBySlug[slug]; ok {
		return l
	}
	return slug
}

// Launcher handles tile activation.
type Launcher struct {
	view   view.Handle
	toast  *Toast
	logger *slog.Logger
}

// NewLauncher returns a Launcher that reports through toast.
func NewLauncher(h view.Handle, toast *Toast, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{view: h, toast: toast, logger: logger}
}

// Activate opens the app behind label: it closes the shade, records the
// canonical id, marks the app open and then shows a toast naming the
// label as the user saw it.
func (l *Launcher) Activate(label string) {
	m, ok := l.view.TryAccess()
	if !ok {
		return
	}
	id := Normalize(label)
	m.ShadeOpen = false
	m.CurrentAppID = id
	m.AppOpen = true
	l.logger.Debug("app activated", "label", label, "app_id", id)

	l.toast.Show(label, l.toast.Delay())
}
