package docnav_test

import (
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/stretchr/testify/assert"
)

func testCorpus() []*docnav.IndexedDocument {
	return []*docnav.IndexedDocument{
		{
			Title:    "Getting Started",
			Section:  "",
			Document: "getting-started",
			Href:     "/getting-started",
			Tags:     []string{"basics"},
		},
		{
			Title:       "Context Engineering",
			Description: "Designing prompts and context windows",
			Section:     "ai",
			Document:    "context-engineering",
			Href:        "/ai/context-engineering",
			Matches:     []string{"prompting", "llm"},
		},
		{
			Title:    "Advanced Topics",
			Section:  "guides",
			Document: "advanced-topics",
			Href:     "/guides/advanced-topics",
			Tags:     []string{"advanced"},
		},
	}
}

func TestFilterDocuments(t *testing.T) {
	t.Parallel()

	t.Run("empty query returns no documents", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docnav.FilterDocuments("", testCorpus()))
	})

	t.Run("matches title substring", func(t *testing.T) {
		t.Parallel()

		got := docnav.FilterDocuments("context", testCorpus())

		assert.Len(t, got, 1)
		assert.Equal(t, "Context Engineering", got[0].Title)
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()

		lower := docnav.FilterDocuments("context", testCorpus())
		upper := docnav.FilterDocuments("CONTEXT", testCorpus())

		assert.Equal(t, lower, upper)
	})

	t.Run("matches tags", func(t *testing.T) {
		t.Parallel()

		got := docnav.FilterDocuments("basic", testCorpus())

		assert.Len(t, got, 1)
		assert.Equal(t, "/getting-started", got[0].Href)
	})

	t.Run("matches description and keyword matches", func(t *testing.T) {
		t.Parallel()

		byDesc := docnav.FilterDocuments("prompts", testCorpus())
		byMatch := docnav.FilterDocuments("llm", testCorpus())

		assert.Len(t, byDesc, 1)
		assert.Len(t, byMatch, 1)
		assert.Equal(t, byDesc[0].Href, byMatch[0].Href)
	})

	t.Run("no hits yields empty result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docnav.FilterDocuments("xyz", testCorpus()))
	})

	t.Run("preserves corpus order", func(t *testing.T) {
		t.Parallel()

		// "t" appears in every document's title
		got := docnav.FilterDocuments("t", testCorpus())

		assert.Len(t, got, 3)
		assert.Equal(t, "/getting-started", got[0].Href)
		assert.Equal(t, "/ai/context-engineering", got[1].Href)
		assert.Equal(t, "/guides/advanced-topics", got[2].Href)
	})
}

func TestMatch_NilDocument(t *testing.T) {
	t.Parallel()

	assert.False(t, docnav.Match("query", nil))
}
