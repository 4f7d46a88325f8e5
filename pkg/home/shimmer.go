package home

import (
	"time"

	"gitlab.com/tinyland/lab/lockscreen/pkg/sched"
	"gitlab.com/tinyland/lab/lockscreen/pkg/view"
)

// DefaultShimmerInterval is the shimmer phase cadence.
const DefaultShimmerInterval = 1800 * time.Millisecond

// Shimmer advances the ambient shimmer phase. It never schedules anything
// when reduced motion is on.
type Shimmer struct {
	view         view.Handle
	interval     time.Duration
	reduceMotion bool
}

// NewShimmer returns a Shimmer. A non-positive interval means
// DefaultShimmerInterval.
func NewShimmer(h view.Handle, interval time.Duration, reduceMotion bool) *Shimmer {
	if interval <= 0 {
		interval = DefaultShimmerInterval
	}
	return &Shimmer{view: h, interval: interval, reduceMotion: reduceMotion}
}

// Start registers the phase task and reports whether it did. With reduced
// motion it returns false and registers nothing.
func (s *Shimmer) Start(sc Scheduler) (sched.Handle, bool) {
	if s.reduceMotion {
		return 0, false
	}
	return sc.Every(s.interval, s.Tick), true
}

// Tick increments the phase, wrapping at the counter's maximum.
func (s *Shimmer) Tick() {
	m, ok := s.view.TryAccess()
	if !ok {
		return
	}
	m.ShimmerPhase++
}
