package debounce_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/debounce"
	"github.com/fwojciec/docnav/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvEvent(t *testing.T, e *debounce.Engine) debounce.Event {
	t.Helper()
	select {
	case ev := <-e.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return debounce.Event{}
	}
}

func assertNoEvent(t *testing.T, e *debounce.Engine) {
	t.Helper()
	select {
	case ev := <-e.Events():
		t.Fatalf("unexpected event for query %q", ev.Query)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngine_DebouncesKeystrokes(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	searcher := &mock.Searcher{
		SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
			calls.Add(1)
			return []docnav.SearchResult{
				{Document: &docnav.IndexedDocument{Title: "hit for " + query}},
			}, nil
		},
	}
	clock := mock.NewClock()
	engine := debounce.NewEngine(searcher, debounce.WithClock(clock))
	defer engine.Close()

	// c at t=0ms, co at t=50ms, con at t=320ms; quiet period 300ms.
	engine.Search("c")
	clock.Advance(50 * time.Millisecond)
	engine.Search("co")
	clock.Advance(270 * time.Millisecond)
	engine.Search("con")
	clock.Advance(300 * time.Millisecond)

	ev := recvEvent(t, engine)
	assert.Equal(t, "con", ev.Query)
	require.NoError(t, ev.Err)
	require.Len(t, ev.Results, 1)
	assert.Equal(t, "hit for con", ev.Results[0].Document.Title)

	assert.Equal(t, int64(1), calls.Load())
	assertNoEvent(t, engine)
}

func TestEngine_LoadingFlag(t *testing.T) {
	t.Parallel()

	searcher := &mock.Searcher{
		SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
			return nil, nil
		},
	}
	clock := mock.NewClock()
	engine := debounce.NewEngine(searcher, debounce.WithClock(clock))
	defer engine.Close()

	assert.False(t, engine.Loading())

	engine.Search("query")
	assert.True(t, engine.Loading())

	clock.Advance(debounce.DefaultDelay)
	recvEvent(t, engine)
	assert.False(t, engine.Loading())
}

func TestEngine_EmptyQuerySettlesEmptyWithoutBackendCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	searcher := &mock.Searcher{
		SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
			calls.Add(1)
			return nil, nil
		},
	}
	clock := mock.NewClock()
	engine := debounce.NewEngine(searcher, debounce.WithClock(clock))
	defer engine.Close()

	engine.Search("")
	clock.Advance(debounce.DefaultDelay)

	ev := recvEvent(t, engine)
	assert.Empty(t, ev.Query)
	assert.Empty(t, ev.Results)
	assert.NoError(t, ev.Err)
	assert.Equal(t, int64(0), calls.Load())
	assert.False(t, engine.Loading())
}

func TestEngine_BackendErrorIsRecoverable(t *testing.T) {
	t.Parallel()

	fail := atomic.Bool{}
	fail.Store(true)
	searcher := &mock.Searcher{
		SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
			if fail.Load() {
				return nil, docnav.Errorf(docnav.EUNAVAILABLE, "search backend unavailable")
			}
			return []docnav.SearchResult{{Document: &docnav.IndexedDocument{Title: "ok"}}}, nil
		},
	}
	clock := mock.NewClock()
	engine := debounce.NewEngine(searcher, debounce.WithClock(clock))
	defer engine.Close()

	engine.Search("first")
	clock.Advance(debounce.DefaultDelay)

	ev := recvEvent(t, engine)
	assert.Empty(t, ev.Results)
	assert.Equal(t, docnav.EUNAVAILABLE, docnav.ErrorCode(ev.Err))
	assert.Equal(t, docnav.EUNAVAILABLE, docnav.ErrorCode(engine.Err()))
	assert.False(t, engine.Loading())

	// The engine stays interactive and recovers on the next query.
	fail.Store(false)
	engine.Search("second")
	clock.Advance(debounce.DefaultDelay)

	ev = recvEvent(t, engine)
	assert.NoError(t, ev.Err)
	assert.Len(t, ev.Results, 1)
	assert.NoError(t, engine.Err())
}

func TestEngine_BackendPanicIsRecoverable(t *testing.T) {
	t.Parallel()

	searcher := &mock.Searcher{
		SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
			panic("index corrupted")
		},
	}
	clock := mock.NewClock()
	engine := debounce.NewEngine(searcher, debounce.WithClock(clock))
	defer engine.Close()

	engine.Search("boom")
	clock.Advance(debounce.DefaultDelay)

	ev := recvEvent(t, engine)
	assert.Empty(t, ev.Results)
	assert.Equal(t, docnav.EINTERNAL, docnav.ErrorCode(ev.Err))
}

func TestEngine_StaleResultsNeverEmitted(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	searcher := &mock.Searcher{
		SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
			if query == "slow" {
				<-release
			}
			return []docnav.SearchResult{
				{Document: &docnav.IndexedDocument{Title: query}},
			}, nil
		},
	}
	clock := mock.NewClock()
	engine := debounce.NewEngine(searcher, debounce.WithClock(clock))
	defer engine.Close()

	// The slow query's search starts, then a newer keystroke supersedes it
	// before its result arrives.
	engine.Search("slow")
	clock.Advance(debounce.DefaultDelay)
	engine.Search("fast")
	close(release)
	clock.Advance(debounce.DefaultDelay)

	ev := recvEvent(t, engine)
	assert.Equal(t, "fast", ev.Query)
	assertNoEvent(t, engine)
}

func TestEngine_CloseCancelsPendingSearch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	searcher := &mock.Searcher{
		SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
			calls.Add(1)
			return nil, nil
		},
	}
	clock := mock.NewClock()
	engine := debounce.NewEngine(searcher, debounce.WithClock(clock))

	engine.Search("pending")
	engine.Close()
	clock.Advance(debounce.DefaultDelay)

	assertNoEvent(t, engine)
	assert.Equal(t, int64(0), calls.Load())
	assert.False(t, engine.Loading())

	// Keystrokes after Close are ignored.
	engine.Search("ignored")
	clock.Advance(debounce.DefaultDelay)
	assertNoEvent(t, engine)
}

func TestEngine_CloseDuringInFlightSearchEmitsNothingAfter(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		started := make(chan struct{})
		release := make(chan struct{})
		searcher := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
				close(started)
				<-release
				return []docnav.SearchResult{
					{Document: &docnav.IndexedDocument{Title: query}},
				}, nil
			},
		}
		clock := mock.NewClock()
		engine := debounce.NewEngine(searcher, debounce.WithClock(clock))

		engine.Search("racy")
		clock.Advance(debounce.DefaultDelay)
		<-started

		// Let the search return while Close runs, so the settle path
		// races the shutdown.
		go close(release)
		engine.Close()

		// Anything enqueued before Close returned is fair game; drain it.
		select {
		case <-engine.Events():
		default:
		}

		time.Sleep(2 * time.Millisecond)
		select {
		case ev := <-engine.Events():
			t.Fatalf("event for %q delivered after Close returned", ev.Query)
		default:
		}
	}
}
