package docnav

import (
	"context"
	"strings"
)

// Searcher answers free-text queries over the document corpus.
type Searcher interface {
	// Search returns documents matching the query.
	// An empty query yields an empty result set, not the whole corpus.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Limit caps the number of results. Zero means no limit.
	Limit int `json:"limit,omitempty"`

	// Section restricts results to a single section slug.
	Section string `json:"section,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Document *IndexedDocument `json:"document"`
	Score    float64          `json:"score"`
}

// Match reports whether the query is a case-insensitive substring of the
// document's title, description, or any of its matches or tags. An empty
// query matches nothing.
func Match(query string, doc *IndexedDocument) bool {
	if query == "" || doc == nil {
		return false
	}

	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(doc.Title), q) {
		return true
	}
	if doc.Description != "" && strings.Contains(strings.ToLower(doc.Description), q) {
		return true
	}
	for _, m := range doc.Matches {
		if strings.Contains(strings.ToLower(m), q) {
			return true
		}
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}

	return false
}

// FilterDocuments returns the documents matching the query, preserving the
// original order of docs. The result is deterministic: identical query and
// corpus always yield identical output.
func FilterDocuments(query string, docs []*IndexedDocument) []*IndexedDocument {
	if query == "" {
		return nil
	}

	var matched []*IndexedDocument
	for _, doc := range docs {
		if Match(query, doc) {
			matched = append(matched, doc)
		}
	}
	return matched
}
