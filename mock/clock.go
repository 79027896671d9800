package mock

import (
	"sync"
	"time"

	"github.com/fwojciec/docnav"
)

var _ docnav.Clock = (*Clock)(nil)

// Clock is a fake docnav.Clock driven explicitly from tests via Advance,
// so debounce behavior can be verified without wall-clock sleeps.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*Timer
}

// NewClock returns a Clock starting at the zero time.
func NewClock() *Clock {
	return &Clock{}
}

// NewTimer returns a fake timer expiring after d of virtual time.
func (c *Clock) NewTimer(d time.Duration) docnav.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &Timer{
		clock:    c,
		c:        make(chan time.Time, 1),
		deadline: c.now.Add(d),
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves virtual time forward and fires every pending timer whose
// deadline has been reached.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now

	var due []*Timer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.deadline.After(now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.c <- now
	}
}

var _ docnav.Timer = (*Timer)(nil)

// Timer is a fake docnav.Timer created by Clock.
type Timer struct {
	clock    *Clock
	c        chan time.Time
	deadline time.Time
	stopped  bool
	fired    bool
}

func (t *Timer) C() <-chan time.Time { return t.c }

func (t *Timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
