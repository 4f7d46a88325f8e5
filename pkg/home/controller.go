package home

import (
	"log/slog"

	"github.com/jonboulle/clockwork"

	"gitlab.com/tinyland/lab/lockscreen/pkg/config"
	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

// Controller wires the components together and is the target of inbound
// events from the rendering layer.
type Controller struct {
	startup  config.Startup
	view     view.Handle
	sched    Scheduler
	host     string
	logger   *slog.Logger
	clock    *Clock
	shimmer  *Shimmer
	toast    *Toast
	launcher *Launcher
}

// Option configures a Controller.
type Option func(*Controller)

// WithHostText sets the host description shown next to the runtime info.
func WithHostText(s string) Option {
	return func(c *Controller) { c.host = s }
}

// New builds a Controller. Nothing is written or scheduled until Start.
func New(st config.Startup, h view.Handle, s Scheduler, clock clockwork.Clock, logger *slog.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{startup: st, view: h, sched: s, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	c.clock = NewClock(h, clock, st.Location, st.ClockInterval)
	c.shimmer = NewShimmer(h, st.ShimmerInterval, st.ReduceMotion)
	c.toast = NewToast(h, s, st.ToastDelay, logger)
	c.launcher = NewLauncher(h, c.toast, logger)
	return c
}

// Start publishes the startup identity and starts the periodic tasks.
func (c *Controller) Start() {
	if m, ok := c.view.TryAccess(); ok {
		b := c.startup.Build
		m.ReduceMotion = c.startup.ReduceMotion
		m.AppVersion = b.Version
		m.RuntimeOS = b.OS
		m.RuntimeArch = b.Arch
		m.RuntimePlatform = b.Platform()
		m.HostText = c.host
	}

	c.clock.Start(c.sched)
	if _, ok := c.shimmer.Start(c.sched); !ok {
		c.logger.Info("ambient animation disabled", "reason", "reduce motion")
	}
}

// OpenApp handles a tile activation.
func (c *Controller) OpenApp(label string) {
	c.launcher.Activate(label)
}

// ToggleShade opens or closes the shade overlay.
func (c *Controller) ToggleShade() {
	if m, ok := c.view.TryAccess(); ok {
		m.ShadeOpen = !m.ShadeOpen
	}
}
