package home

// Inbox forwards user actions from another goroutine onto the loop that
// owns the controller. Each method reports false when the loop has shut
// down and the action was dropped.
type Inbox struct {
	post func(func()) bool
	c    *Controller
}

// NewInbox returns an Inbox that delivers through post, typically
// (*sched.Loop).Post.
func NewInbox(post func(func()) bool, c *Controller) *Inbox {
	return &Inbox{post: post, c: c}
}

// OpenApp queues a tile activation.
func (in *Inbox) OpenApp(label string) bool {
	return in.post(func() { in.c.OpenApp(label) })
}

// ToggleShade queues a shade toggle.
func (in *Inbox) ToggleShade() bool {
	return in.post(in.c.ToggleShade)
}
