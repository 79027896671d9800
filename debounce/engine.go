// Package debounce provides a search-as-you-type engine: keystrokes reset
// a quiet-period timer, and only the query that survives the quiet period
// is executed against the backing docnav.Searcher. Superseded queries are
// cancelled entirely and never emit results.
package debounce

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/docnav"
)

// DefaultDelay is the quiet period a query must survive before executing.
const DefaultDelay = 300 * time.Millisecond

// Event carries the settled outcome of one debounced query. On error,
// Results is empty and Err holds the recoverable failure.
type Event struct {
	Query   string
	Results []docnav.SearchResult
	Err     error
}

// Engine debounces a keystroke stream into search executions.
//
// Ordering guarantee: once a newer query has been submitted, an older
// query's results are never emitted, even if its search returns late.
type Engine struct {
	searcher docnav.Searcher
	clock    docnav.Clock
	delay    time.Duration
	opts     docnav.SearchOptions

	events   chan Event
	done     chan struct{}
	once     sync.Once
	emitting sync.WaitGroup

	mu      sync.Mutex
	gen     int // bumped per keystroke; stale generations are dropped
	pending string
	timer   docnav.Timer
	quit    chan struct{} // closed when the pending timer is superseded
	cancel  context.CancelFunc
	loading bool
	lastErr error
	closed  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelay overrides the debounce quiet period.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) { e.delay = d }
}

// WithClock substitutes the timer source, typically a fake clock in tests.
func WithClock(c docnav.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithSearchOptions sets the options passed to every search execution.
func WithSearchOptions(opts docnav.SearchOptions) Option {
	return func(e *Engine) { e.opts = opts }
}

// NewEngine creates an Engine over the given searcher.
// Call Close when the hosting view is torn down.
func NewEngine(searcher docnav.Searcher, opts ...Option) *Engine {
	e := &Engine{
		searcher: searcher,
		clock:    docnav.SystemClock{},
		delay:    DefaultDelay,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search submits a keystroke. The pending quiet-period timer restarts and
// any in-flight search for an earlier query is superseded. No-op after
// Close.
func (e *Engine) Search(query string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.gen++
	e.pending = query
	e.loading = true
	if e.timer != nil {
		e.timer.Stop()
	}
	if e.quit != nil {
		close(e.quit)
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}

	timer := e.clock.NewTimer(e.delay)
	quit := make(chan struct{})
	e.timer = timer
	e.quit = quit
	go e.await(timer, quit, e.gen)
}

// await waits out the quiet period for one generation, then executes the
// search unless a newer keystroke superseded it.
func (e *Engine) await(timer docnav.Timer, quit chan struct{}, gen int) {
	select {
	case <-timer.C():
	case <-quit:
		return
	case <-e.done:
		return
	}

	e.mu.Lock()
	if e.closed || gen != e.gen {
		e.mu.Unlock()
		return
	}
	query := e.pending
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.mu.Unlock()

	results, err := e.execute(ctx, query)
	cancel()

	e.mu.Lock()
	if e.closed || gen != e.gen {
		// Superseded while searching; a newer query owns the loading flag.
		e.mu.Unlock()
		return
	}
	e.cancel = nil
	e.loading = false
	e.lastErr = err
	e.mu.Unlock()

	if err != nil {
		results = nil
	}
	e.emit(Event{Query: query, Results: results, Err: err})
}

// emit delivers an event unless the engine has been closed. Registering
// with emitting before releasing the mutex lets Close wait for any send
// already in progress, so nothing lands in the buffer after Close returns.
func (e *Engine) emit(ev Event) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.emitting.Add(1)
	e.mu.Unlock()
	defer e.emitting.Done()

	select {
	case e.events <- ev:
	case <-e.done:
	}
}

// execute runs a single search. Backend failures, including panics, come
// back as errors so the engine stays interactive.
func (e *Engine) execute(ctx context.Context, query string) (results []docnav.SearchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = docnav.Errorf(docnav.EINTERNAL, "search backend panic: %v", r)
		}
	}()

	if query == "" {
		return nil, nil
	}
	return e.searcher.Search(ctx, query, e.opts)
}

// Events returns the stream of settled query outcomes. The channel is
// never closed; stop reading after Close.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// Loading reports whether a query is pending or executing.
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// Err returns the error from the most recently settled query, or nil.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Close cancels any pending timer and in-flight search. No events are
// emitted after Close returns.
func (e *Engine) Close() {
	e.once.Do(func() {
		e.mu.Lock()
		e.closed = true
		e.loading = false
		if e.timer != nil {
			e.timer.Stop()
		}
		if e.cancel != nil {
			e.cancel()
			e.cancel = nil
		}
		e.mu.Unlock()
		close(e.done)
		e.emitting.Wait()
	})
}
