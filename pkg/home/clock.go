package home

import (
	"time"

	"github.com/jonboulle/clockwork"

	"gitlab.com/tinyland/lab/lockscreen/pkg/locale"
	"gitlab.com/tinyland/lab/lockscreen/pkg/sched"
	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

// DefaultClockInterval is the clock refresh cadence.
const DefaultClockInterval = time.Second

// Clock keeps TimeText and DateText in sync with the wall clock.
type Clock struct {
	view     view.Handle
	clock    clockwork.Clock
	loc      *time.Location
	interval time.Duration
}

// NewClock returns a Clock reading time from clock in loc. A nil loc means
// time.Local; a non-positive interval means DefaultClockInterval.
func NewClock(h view.Handle, clock clockwork.Clock, loc *time.Location, interval time.Duration) *Clock {
	if loc == nil {
		loc = time.Local
	}
	if interval <= 0 {
		interval = DefaultClockInterval
	}
	return &Clock{view: h, clock: clock, loc: loc, interval: interval}
}

// Start writes the current time immediately and then on every interval.
func (c *Clock) Start(s Scheduler) sched.Handle {
	c.Tick()
	return s.Every(c.interval, c.Tick)
}

// Tick formats the current time into the model.
func (c *Clock) Tick() {
	m, ok := c.view.TryAccess()
	if !ok {
		return
	}
	now := c.clock.Now().In(c.loc)
	m.TimeText = locale.FormatTime(now)
	m.DateText = locale.FormatDate(now)
}
