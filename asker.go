package docnav

import "context"

// Asker provides natural language question answering over the corpus.
type Asker interface {
	// Ask retrieves documents relevant to query and answers the question
	// using only their content as context.
	// Returns ENOTFOUND if no documents match the query.
	Ask(ctx context.Context, query string, question string) (string, error)
}

// TokenCounter counts model tokens in text, used to size prompt context.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
