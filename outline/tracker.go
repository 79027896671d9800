// Package outline tracks which heading of a rendered document is currently
// being read, based on anchor positions reported by a docnav.Viewport.
package outline

import (
	"sync"

	"github.com/fwojciec/docnav"
	"golang.org/x/time/rate"
)

// Tracker keeps a "currently read heading" cursor synchronized with
// viewport scrolling. It is safe for concurrent use; the host view calls
// HandleScroll from its scroll event stream and reads Active (or receives
// OnChange callbacks) to highlight the outline entry.
type Tracker struct {
	viewport       docnav.Viewport
	limiter        *rate.Limiter
	topMargin      float64
	bottomFraction float64
	headerOffset   float64
	onChange       func(id string)

	mu     sync.Mutex
	ids    []string
	active string
	closed bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithOnChange registers a callback invoked whenever the active heading
// changes. The callback runs synchronously on the goroutine that triggered
// the update.
func WithOnChange(fn func(id string)) Option {
	return func(t *Tracker) { t.onChange = fn }
}

// WithBand overrides the viewport band used to pick the active heading:
// topMargin pixels from the viewport top down to bottomFraction of its
// height.
func WithBand(topMargin, bottomFraction float64) Option {
	return func(t *Tracker) {
		t.topMargin = topMargin
		t.bottomFraction = bottomFraction
	}
}

// WithHeaderOffset overrides the fixed-header offset applied by NavigateTo.
func WithHeaderOffset(px float64) Option {
	return func(t *Tracker) { t.headerOffset = px }
}

// WithScrollRate caps how many scroll events per second trigger a
// recomputation. Excess events are dropped, not queued.
func WithScrollRate(eventsPerSecond float64) Option {
	return func(t *Tracker) {
		t.limiter = rate.NewLimiter(rate.Limit(eventsPerSecond), 1)
	}
}

// NewTracker creates a Tracker over the given viewport with no headings.
func NewTracker(viewport docnav.Viewport, opts ...Option) *Tracker {
	t := &Tracker{
		viewport:       viewport,
		topMargin:      docnav.DefaultTopMargin,
		bottomFraction: docnav.DefaultBottomFraction,
		headerOffset:   docnav.DefaultHeaderOffset,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetHeadings replaces the tracked anchor IDs and resets the active
// heading. Call it whenever the viewed document changes.
func (t *Tracker) SetHeadings(ids []string) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.ids = append([]string(nil), ids...)
	t.active = ""
	t.mu.Unlock()

	t.Refresh()
}

// HandleScroll recomputes the active heading from current anchor
// positions. Bursts beyond the configured scroll rate are dropped.
func (t *Tracker) HandleScroll() {
	if t.limiter != nil && !t.limiter.Allow() {
		return
	}
	t.Refresh()
}

// Refresh recomputes the active heading immediately, bypassing the scroll
// rate limit.
func (t *Tracker) Refresh() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	ids := t.ids
	t.mu.Unlock()

	if len(ids) == 0 {
		return
	}

	boxes := t.viewport.Anchors(ids)
	next := t.pickActive(boxes, t.viewport.Height())

	t.mu.Lock()
	if t.closed || next == t.active {
		t.mu.Unlock()
		return
	}
	t.active = next
	fn := t.onChange
	t.mu.Unlock()

	if fn != nil {
		fn(next)
	}
}

// pickActive selects the heading dominating the reading viewport: the last
// anchor scrolled past the top margin, or failing that the first anchor
// visible above the bottom of the band. Anchors missing from boxes (no
// rendered element) are simply absent and therefore skipped.
func (t *Tracker) pickActive(boxes []docnav.AnchorBox, height float64) string {
	bandBottom := height * t.bottomFraction

	active := ""
	for _, box := range boxes {
		if box.Top <= t.topMargin {
			active = box.ID
		}
	}
	if active != "" {
		return active
	}

	for _, box := range boxes {
		if box.Top < bandBottom {
			return box.ID
		}
	}
	return ""
}

// Active returns the ID of the heading currently in view, or an empty
// string before the first qualifying update.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// NavigateTo scrolls the viewport to the given heading, offset for the
// fixed page header, and refreshes the active heading.
func (t *Tracker) NavigateTo(id string) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	t.viewport.ScrollTo(id, t.headerOffset)
	t.Refresh()
}

// Close detaches the tracker. Subsequent scroll events are ignored and the
// OnChange callback never fires again.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.ids = nil
	t.active = ""
}
