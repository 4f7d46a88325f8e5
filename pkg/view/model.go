// Package view holds the lock screen's view model: the field set the
// rendering layer observes and the controller writes into.
//
// The model lives inside a Surface, which the rendering layer owns. Timer
// callbacks never hold the model directly; they hold a Handle and call
// TryAccess on every run, so a surface torn down while a callback is still
// scheduled turns that callback into a no-op.
package view

// Model is the rendered state of the lock screen.
type Model struct {
	TimeText string
	DateText string

	ToastText    string
	ToastVisible bool

	ShadeOpen    bool
	CurrentAppID string
	AppOpen      bool

	ShimmerPhase uint32

	// Set once at startup.
	ReduceMotion    bool
	AppVersion      string
	RuntimeOS       string
	RuntimeArch     string
	RuntimePlatform string
	HostText        string
}

// Snapshot is an immutable copy of a Model handed to the renderer.
type Snapshot Model

// Surface owns a Model for the lifetime of the UI. It is not safe for
// concurrent use; every access happens on the scheduler goroutine.
type Surface struct {
	model    Model
	closed   bool
	last     Snapshot
	notified bool
	notify   func(Snapshot)
}

// NewSurface returns a Surface holding the zero Model.
func NewSurface() *Surface {
	return &Surface{}
}

// Handle returns a non-owning reference to the surface's model.
func (s *Surface) Handle() Handle {
	return Handle{s: s}
}

// Subscribe installs fn as the receiver of snapshots published by Flush.
// Only one subscriber is kept; a later call replaces the earlier one.
func (s *Surface) Subscribe(fn func(Snapshot)) {
	s.notify = fn
	s.notified = false
}

// Snapshot returns a copy of the current model.
func (s *Surface) Snapshot() Snapshot {
	return Snapshot(s.model)
}

// Flush publishes the current snapshot to the subscriber if it changed since
// the last publish. It does nothing once the surface is closed.
func (s *Surface) Flush() {
	if s.closed || s.notify == nil {
		return
	}
	snap := s.Snapshot()
	if s.notified && snap == s.last {
		return
	}
	s.last = snap
	s.notified = true
	s.notify(snap)
}

// Close tears the surface down. Every Handle's TryAccess fails afterwards.
func (s *Surface) Close() {
	s.closed = true
	s.notify = nil
}

// Closed reports whether the surface has been torn down.
func (s *Surface) Closed() bool {
	return s.closed
}

// Handle is a checked, non-owning reference to a Surface's model. The zero
// Handle refers to nothing.
type Handle struct {
	s *Surface
}

// TryAccess returns the live model, or false when the surface is gone.
func (h Handle) TryAccess() (*Model, bool) {
	if h.s == nil || h.s.closed {
		return nil, false
	}
	return &h.s.model, true
}
