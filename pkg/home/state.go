package home

import "gitlab.com/tinyland/lab/lockscreen/pkg/view"

// State is the combined launcher/toast state.
type State int

const (
	// Idle: no app has been opened yet.
	Idle State = iota
	// AppOpening: an app is open and no toast is showing.
	AppOpening
	// ToastShown: an app is open and its toast is visible.
	ToastShown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AppOpening:
		return "app-opening"
	case ToastShown:
		return "toast-shown"
	default:
		return "unknown"
	}
}

// StateOf derives the state from a snapshot.
func StateOf(s view.Snapshot) State {
	switch {
	case !s.AppOpen:
		return Idle
	case s.ToastVisible:
		return ToastShown
	default:
		return AppOpening
	}
}
