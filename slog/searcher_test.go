package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/mock"
	docslog "github.com/fwojciec/docnav/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
				return []docnav.SearchResult{
					{Document: &docnav.IndexedDocument{Href: "/guides/a"}},
					{Document: &docnav.IndexedDocument{Href: "/guides/b"}},
				}, nil
			},
		}

		s := docslog.NewLoggingSearcher(inner, logger)
		results, err := s.Search(context.Background(), "deploy", docnav.SearchOptions{})

		require.NoError(t, err)
		assert.Len(t, results, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "query=deploy")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string, opts docnav.SearchOptions) ([]docnav.SearchResult, error) {
				return nil, docnav.Errorf(docnav.EUNAVAILABLE, "index offline")
			},
		}

		s := docslog.NewLoggingSearcher(inner, logger)
		_, err := s.Search(context.Background(), "deploy", docnav.SearchOptions{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "index offline")
	})
}
