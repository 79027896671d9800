package docnav

import "time"

// Timer is a cancellable single-shot timer.
type Timer interface {
	// C returns the channel the expiry is delivered on.
	C() <-chan time.Time

	// Stop cancels the timer. It reports whether the timer was still
	// pending; a stopped timer never delivers on C.
	Stop() bool
}

// Clock creates timers. Production code uses SystemClock; tests substitute
// a fake to drive time explicitly instead of sleeping.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

// SystemClock implements Clock using real wall-clock timers.
type SystemClock struct{}

var _ Clock = (*SystemClock)(nil)

// NewTimer returns a timer that fires after d.
func (SystemClock) NewTimer(d time.Duration) Timer {
	return &systemTimer{t: time.NewTimer(d)}
}

type systemTimer struct {
	t *time.Timer
}

func (s *systemTimer) C() <-chan time.Time { return s.t.C }
func (s *systemTimer) Stop() bool          { return s.t.Stop() }
