// Package memory provides an in-memory docnav.Searcher with substring
// matching semantics: results preserve corpus order, with an optional
// scorer hook for callers that want relevance ordering instead.
package memory

import (
	"context"
	"sort"

	"github.com/fwojciec/docnav"
)

// Ensure Index implements docnav.Searcher at compile time.
var _ docnav.Searcher = (*Index)(nil)

// Scorer assigns a relevance score to a matched document. Higher is more
// relevant. Returned results are reordered by score; ties keep corpus
// order.
type Scorer func(query string, doc *docnav.IndexedDocument) float64

// Index is a read-only in-memory search index over a fixed corpus.
// It is safe for concurrent use.
type Index struct {
	docs   []*docnav.IndexedDocument
	scorer Scorer
}

// Option configures an Index.
type Option func(*Index)

// WithScorer installs a relevance scorer. Without one, matches keep
// corpus order and score zero.
func WithScorer(s Scorer) Option {
	return func(ix *Index) { ix.scorer = s }
}

// NewIndex creates an Index over the given documents. The slice is copied;
// later mutation of docs does not affect the index.
func NewIndex(docs []*docnav.IndexedDocument, opts ...Option) *Index {
	ix := &Index{docs: append([]*docnav.IndexedDocument(nil), docs...)}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Load hydrates an Index from a document service, in corpus order.
func Load(ctx context.Context, svc docnav.DocumentService, opts ...Option) (*Index, error) {
	docs, err := svc.FindDocuments(ctx, docnav.DocumentFilter{})
	if err != nil {
		return nil, err
	}
	return NewIndex(docs, opts...), nil
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Search returns documents matching the query as a case-insensitive
// substring of their title, description, matches, or tags. An empty query
// yields no results. Output is deterministic for a given query and corpus.
func (ix *Index) Search(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == "" {
		return nil, nil
	}

	var results []docnav.SearchResult
	for _, doc := range ix.docs {
		if opts.Section != "" && doc.Section != opts.Section {
			continue
		}
		if !docnav.Match(query, doc) {
			continue
		}

		score := 0.0
		if ix.scorer != nil {
			score = ix.scorer(query, doc)
		}
		results = append(results, docnav.SearchResult{Document: doc, Score: score})
	}

	if ix.scorer != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}
