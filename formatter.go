package docnav

import "strings"

// FormatResults formats search results for display or LLM context.
// Uses title if available, falls back to href.
// Documents are separated by blank lines.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, res := range results {
		doc := res.Document
		header := doc.Title
		if header == "" {
			header = doc.Href
		}
		parts = append(parts, "## Document: "+header+"\n"+doc.Content)
	}

	return strings.Join(parts, "\n\n")
}
