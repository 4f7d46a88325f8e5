package home

import (
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/lockscreen/pkg/sched"
	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

// DefaultToastDelay is how long a toast stays visible when no delay is
// configured. An earlier release used two seconds.
const DefaultToastDelay = time.Second

// OpenedPrefix starts every app-opened toast.
const OpenedPrefix = "Открыто: "

// Toast shows a transient notification and hides it after a delay. At most
// one dismissal is pending; each Show replaces the previous one.
type Toast struct {
	view    view.Handle
	sched   Scheduler
	delay   time.Duration
	pending sched.Handle
	logger  *slog.Logger
}

// NewToast returns a Toast. A non-positive delay means DefaultToastDelay.
func NewToast(h view.Handle, s Scheduler, delay time.Duration, logger *slog.Logger) *Toast {
	if delay <= 0 {
		delay = DefaultToastDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Toast{view: h, sched: s, delay: delay, logger: logger}
}

// Delay returns the default dismissal delay.
func (t *Toast) Delay() time.Duration {
	return t.delay
}

// Show displays "Открыто: <label>" and schedules its dismissal after delay
// (the default when delay is non-positive). A dismissal still pending from
// an earlier call is cancelled.
func (t *Toast) Show(label string, delay time.Duration) {
	if delay <= 0 {
		delay = t.delay
	}
	m, ok := t.view.TryAccess()
	if !ok {
		return
	}
	m.ToastText = OpenedPrefix + label
	m.ToastVisible = true

	if t.pending != 0 {
		t.sched.Cancel(t.pending)
		t.logger.Debug("toast dismissal superseded", "label", label)
	}
	var h sched.Handle
	h = t.sched.Schedule(delay, func() {
		if t.pending == h {
			t.pending = 0
		}
		t.dismiss()
	})
	t.pending = h
}

// Pending reports whether a dismissal is scheduled.
func (t *Toast) Pending() bool {
	return t.pending != 0
}

func (t *Toast) dismiss() {
	m, ok := t.view.TryAccess()
	if !ok {
		return
	}
	m.ToastVisible = false
}
