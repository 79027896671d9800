package mock

import (
	"context"

	"github.com/fwojciec/docnav"
)

var _ docnav.Asker = (*Asker)(nil)

// Asker is a mock implementation of docnav.Asker.
type Asker struct {
	AskFn func(ctx context.Context, query string, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, query string, question string) (string, error) {
	return a.AskFn(ctx, query, question)
}

var _ docnav.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of docnav.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
