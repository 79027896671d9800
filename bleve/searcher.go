// Package bleve provides a ranked full-text docnav.Searcher backed by an
// in-memory bleve index. It is the relevance-ordered alternative to the
// order-preserving substring engine in memory/.
package bleve

import (
	"context"

	"github.com/blevesearch/bleve/v2"
	"github.com/fwojciec/docnav"
)

// Ensure Searcher implements docnav.Searcher at compile time.
var _ docnav.Searcher = (*Searcher)(nil)

// Searcher answers queries against a bleve full-text index built over the
// corpus at construction time. Results are ordered by descending relevance
// score.
type Searcher struct {
	index bleve.Index
	docs  map[string]*docnav.IndexedDocument // keyed by href
}

// NewSearcher builds an in-memory index over the given documents.
// Call Close when the searcher is no longer needed.
func NewSearcher(docs []*docnav.IndexedDocument) (*Searcher, error) {
	mapping := bleve.NewIndexMapping()
	index, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, docnav.Errorf(docnav.EINTERNAL, "failed to create search index: %v", err)
	}

	s := &Searcher{
		index: index,
		docs:  make(map[string]*docnav.IndexedDocument, len(docs)),
	}

	batch := index.NewBatch()
	for _, doc := range docs {
		href := doc.Href
		if href == "" {
			href = docnav.BuildHref(doc.Section, doc.Document)
		}
		if err := batch.Index(href, doc); err != nil {
			index.Close()
			return nil, docnav.Errorf(docnav.EINTERNAL, "failed to index document %q: %v", href, err)
		}
		s.docs[href] = doc
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, docnav.Errorf(docnav.EINTERNAL, "failed to build search index: %v", err)
	}

	return s, nil
}

// Search executes a match query and returns hits by descending score.
// An empty query yields no results.
func (s *Searcher) Search(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
	if query == "" {
		return nil, nil
	}

	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequest(q)
	// Fetch everything and trim after section filtering.
	req.Size = len(s.docs)

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, docnav.Errorf(docnav.EUNAVAILABLE, "search failed: %v", err)
	}

	var results []docnav.SearchResult
	for _, hit := range res.Hits {
		doc, ok := s.docs[hit.ID]
		if !ok {
			continue
		}
		if opts.Section != "" && doc.Section != opts.Section {
			continue
		}
		results = append(results, docnav.SearchResult{Document: doc, Score: hit.Score})
		if opts.Limit > 0 && len(results) == opts.Limit {
			break
		}
	}
	return results, nil
}

// Close releases index resources.
func (s *Searcher) Close() error {
	return s.index.Close()
}
