package memory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/memory"
	"github.com/fwojciec/docnav/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus() []*docnav.IndexedDocument {
	return []*docnav.IndexedDocument{
		{Title: "Getting Started", Tags: []string{"basics"}, Href: "/getting-started"},
		{Title: "Advanced Topics", Tags: []string{"advanced"}, Section: "guides", Href: "/guides/advanced-topics"},
		{Title: "Context Engineering", Matches: []string{"llm", "prompting"}, Section: "ai", Href: "/ai/context-engineering"},
	}
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty query returns no results", func(t *testing.T) {
		t.Parallel()

		ix := memory.NewIndex(corpus())

		results, err := ix.Search(ctx, "", docnav.SearchOptions{})

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("matches by tag", func(t *testing.T) {
		t.Parallel()

		ix := memory.NewIndex(corpus())

		results, err := ix.Search(ctx, "basic", docnav.SearchOptions{})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "/getting-started", results[0].Document.Href)
	})

	t.Run("unmatched query returns empty", func(t *testing.T) {
		t.Parallel()

		ix := memory.NewIndex(corpus())

		results, err := ix.Search(ctx, "xyz", docnav.SearchOptions{})

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("preserves corpus order without a scorer", func(t *testing.T) {
		t.Parallel()

		ix := memory.NewIndex(corpus())

		// "t" matches every title.
		results, err := ix.Search(ctx, "t", docnav.SearchOptions{})

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "/getting-started", results[0].Document.Href)
		assert.Equal(t, "/guides/advanced-topics", results[1].Document.Href)
		assert.Equal(t, "/ai/context-engineering", results[2].Document.Href)
	})

	t.Run("section filter restricts results", func(t *testing.T) {
		t.Parallel()

		ix := memory.NewIndex(corpus())

		results, err := ix.Search(ctx, "t", docnav.SearchOptions{Section: "ai"})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "/ai/context-engineering", results[0].Document.Href)
	})

	t.Run("limit caps results", func(t *testing.T) {
		t.Parallel()

		ix := memory.NewIndex(corpus())

		results, err := ix.Search(ctx, "t", docnav.SearchOptions{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("scorer reorders matches", func(t *testing.T) {
		t.Parallel()

		// Title-prefix matches outrank everything else.
		scorer := func(query string, doc *docnav.IndexedDocument) float64 {
			if strings.HasPrefix(strings.ToLower(doc.Title), strings.ToLower(query)) {
				return 1
			}
			return 0
		}
		ix := memory.NewIndex(corpus(), memory.WithScorer(scorer))

		results, err := ix.Search(ctx, "context", docnav.SearchOptions{})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 1.0, results[0].Score)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ix := memory.NewIndex(corpus())
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ix.Search(cancelled, "basic", docnav.SearchOptions{})

		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	svc := &mock.DocumentService{
		FindDocumentsFn: func(ctx context.Context, filter docnav.DocumentFilter) ([]*docnav.IndexedDocument, error) {
			return corpus(), nil
		},
	}

	ix, err := memory.Load(context.Background(), svc)

	require.NoError(t, err)
	assert.Equal(t, 3, ix.Len())
}

func TestLoad_StorageError(t *testing.T) {
	t.Parallel()

	svc := &mock.DocumentService{
		FindDocumentsFn: func(ctx context.Context, filter docnav.DocumentFilter) ([]*docnav.IndexedDocument, error) {
			return nil, docnav.Errorf(docnav.EUNAVAILABLE, "storage offline")
		},
	}

	_, err := memory.Load(context.Background(), svc)

	assert.Equal(t, docnav.EUNAVAILABLE, docnav.ErrorCode(err))
}
