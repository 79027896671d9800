// Package gemini answers natural language questions about the corpus
// using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docnav"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// askContextLimit caps how many search results feed the prompt.
const askContextLimit = 10

// Ensure Asker implements docnav.Asker at compile time.
var _ docnav.Asker = (*Asker)(nil)

// Asker implements docnav.Asker using Google Gemini. Documents matching
// the query are retrieved through a docnav.Searcher and supplied to the
// model as the only context for the answer.
type Asker struct {
	client   *genai.Client
	searcher docnav.Searcher

	counter   docnav.TokenCounter
	maxTokens int
}

// Option configures an Asker.
type Option func(*Asker)

// WithTokenBudget limits prompt context to maxTokens, dropping the
// lowest-ranked documents first.
func WithTokenBudget(counter docnav.TokenCounter, maxTokens int) Option {
	return func(a *Asker) {
		a.counter = counter
		a.maxTokens = maxTokens
	}
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, searcher docnav.Searcher, opts ...Option) *Asker {
	a := &Asker{client: client, searcher: searcher}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask answers a natural language question using documents matching query.
func (a *Asker) Ask(ctx context.Context, query, question string) (string, error) {
	if query == "" {
		return "", docnav.Errorf(docnav.EINVALID, "query required")
	}
	if question == "" {
		return "", docnav.Errorf(docnav.EINVALID, "question required")
	}

	results, err := a.searcher.Search(ctx, query, docnav.SearchOptions{Limit: askContextLimit})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", docnav.Errorf(docnav.ENOTFOUND, "no documents found for query %q", query)
	}

	if a.counter != nil {
		results, err = a.trimToBudget(ctx, results)
		if err != nil {
			return "", err
		}
	}

	prompt := BuildUserPrompt(results, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docnav.Errorf(docnav.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// trimToBudget keeps the highest-ranked results whose cumulative token
// count fits the budget. The first result is always kept so the model
// has at least one document to work with.
func (a *Asker) trimToBudget(ctx context.Context, results []docnav.SearchResult) ([]docnav.SearchResult, error) {
	total := 0
	for i, res := range results {
		n, err := a.counter.CountTokens(ctx, res.Document.Content)
		if err != nil {
			return nil, err
		}
		total += n
		if total > a.maxTokens && i > 0 {
			return results[:i], nil
		}
	}
	return results, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about software documentation. Answer based only on the documentation provided. If the answer is not in the documentation, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing documentation and question.
func BuildUserPrompt(results []docnav.SearchResult, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, res := range results {
		doc := res.Document
		title := doc.Title
		if title == "" {
			title = doc.Href
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<href>%s</href>\n", doc.Href)
		fmt.Fprintf(&sb, "<content>%s</content>\n", doc.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
