package mock

import (
	"context"

	"github.com/fwojciec/docnav"
)

var _ docnav.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of docnav.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}
