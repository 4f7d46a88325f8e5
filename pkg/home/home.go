// Package home implements the lock screen controller: the clock ticker, the
// ambient shimmer, the toast and the app launcher. Every component writes
// into a view.Model through a view.Handle and schedules work on a Scheduler;
// all callbacks run on the scheduler's single goroutine.
package home

import (
	"time"

	"gitlab.com/tinyland/lab/lockscreen/pkg/sched"
)

// Scheduler is the subset of sched.Loop the components depend on.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) sched.Handle
	Every(interval time.Duration, fn func()) sched.Handle
	Cancel(h sched.Handle)
}
