// Package sched provides the single-threaded event loop that drives every
// timer and inbound event of the lock screen. All callbacks run on the
// goroutine that calls Run (or RunDue in tests), so state touched only from
// callbacks needs no locking.
//
// Time is read from an injected clockwork.Clock. Tests pass a fake clock,
// call Advance and then RunDue to fire whatever became due, without any
// goroutines involved.
package sched

import (
	"container/heap"
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle uint64

// inboxSize bounds the number of posted events waiting for the loop.
const inboxSize = 64

type task struct {
	handle    Handle
	due       time.Time
	interval  time.Duration // zero for single-shot tasks
	seq       uint64
	fn        func()
	cancelled bool
}

// Loop is a cooperative scheduler. Schedule, Every, Cancel and RunDue must
// only be called from the loop goroutine (or before Run starts); Post is
// safe from any goroutine.
type Loop struct {
	clock    clockwork.Clock
	queue    taskQueue
	tasks    map[Handle]*task
	next     Handle
	seq      uint64
	inbox    chan func()
	done     chan struct{}
	closed   bool
	afterRun func()
}

// Option configures a Loop.
type Option func(*Loop)

// WithAfterRun installs a hook invoked after every batch of callbacks the
// loop runs (due timers or a posted event).
func WithAfterRun(fn func()) Option {
	return func(l *Loop) { l.afterRun = fn }
}

// New returns a Loop reading time from clock.
func New(clock clockwork.Clock, opts ...Option) *Loop {
	l := &Loop{
		clock: clock,
		tasks: make(map[Handle]*task),
		inbox: make(chan func(), inboxSize),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Clock returns the clock the loop schedules against.
func (l *Loop) Clock() clockwork.Clock {
	return l.clock
}

// Schedule runs fn once after delay. A non-positive delay makes the task due
// immediately; it still fires only from RunDue or Run.
func (l *Loop) Schedule(delay time.Duration, fn func()) Handle {
	return l.add(delay, 0, fn)
}

// Every runs fn repeatedly, first after interval and then at a fixed rate.
// Periods missed between two RunDue calls are all fired on the next one.
// A non-positive interval is treated as a single-shot task.
func (l *Loop) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		return l.add(0, 0, fn)
	}
	return l.add(interval, interval, fn)
}

func (l *Loop) add(delay, interval time.Duration, fn func()) Handle {
	l.next++
	if l.closed {
		return l.next
	}
	if delay < 0 {
		delay = 0
	}
	t := &task{
		handle:   l.next,
		due:      l.clock.Now().Add(delay),
		interval: interval,
		fn:       fn,
	}
	l.push(t)
	l.tasks[t.handle] = t
	return t.handle
}

func (l *Loop) push(t *task) {
	l.seq++
	t.seq = l.seq
	heap.Push(&l.queue, t)
}

// Cancel stops the task identified by h. Cancelling a task that already
// fired, was already cancelled, or was never issued does nothing.
func (l *Loop) Cancel(h Handle) {
	t, ok := l.tasks[h]
	if !ok {
		return
	}
	t.cancelled = true
	delete(l.tasks, h)
}

// Pending reports whether h still refers to a task that will fire.
func (l *Loop) Pending(h Handle) bool {
	_, ok := l.tasks[h]
	return ok
}

// Len returns the number of live tasks.
func (l *Loop) Len() int {
	return len(l.tasks)
}

// Next returns the due time of the earliest live task.
func (l *Loop) Next() (time.Time, bool) {
	l.dropCancelled()
	if len(l.queue) == 0 {
		return time.Time{}, false
	}
	return l.queue[0].due, true
}

func (l *Loop) dropCancelled() {
	for len(l.queue) > 0 && l.queue[0].cancelled {
		heap.Pop(&l.queue)
	}
}

// RunDue fires every task due at the clock's current time, earliest first
// and in registration order for equal due times. It returns the number of
// callbacks run.
func (l *Loop) RunDue() int {
	now := l.clock.Now()
	fired := 0
	for !l.closed {
		l.dropCancelled()
		if len(l.queue) == 0 || l.queue[0].due.After(now) {
			break
		}
		t := heap.Pop(&l.queue).(*task)
		if t.interval > 0 {
			t.due = t.due.Add(t.interval)
			l.push(t)
		} else {
			delete(l.tasks, t.handle)
		}
		t.fn()
		fired++
	}
	if fired > 0 {
		l.after()
	}
	return fired
}

func (l *Loop) after() {
	if l.afterRun != nil && !l.closed {
		l.afterRun()
	}
}

// Post queues fn to run on the loop goroutine. It reports false when the
// loop has been closed and fn was dropped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.inbox <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Drain runs every posted event currently queued. It is the RunDue
// counterpart for inbound events and is mostly useful in tests.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case fn := <-l.inbox:
			if l.closed {
				return n
			}
			fn()
			n++
			l.after()
		default:
			return n
		}
	}
}

// Run dispatches timers and posted events until ctx is cancelled, then
// closes the loop.
func (l *Loop) Run(ctx context.Context) {
	defer l.Close()
	for {
		l.RunDue()

		var (
			timer clockwork.Timer
			wake  <-chan time.Time
		)
		if due, ok := l.Next(); ok {
			wait := due.Sub(l.clock.Now())
			if wait <= 0 {
				continue
			}
			timer = l.clock.NewTimer(wait)
			wake = timer.Chan()
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return
		case fn := <-l.inbox:
			stopTimer(timer)
			fn()
			l.after()
		case <-wake:
		}
	}
}

func stopTimer(t clockwork.Timer) {
	if t != nil {
		t.Stop()
	}
}

// Close discards every pending task without firing it. Posted events not yet
// run are dropped. Close is idempotent.
func (l *Loop) Close() {
	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
	l.queue = nil
	clear(l.tasks)
}

// Closed reports whether Close has been called. Like Schedule, it is meant
// for the loop goroutine.
func (l *Loop) Closed() bool {
	return l.closed
}

// taskQueue is a min-heap ordered by due time, then registration sequence.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
