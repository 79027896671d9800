package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Query, docnav.SearchOptions{
		Limit:   c.Limit,
		Section: c.Section,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	if c.Content {
		fmt.Fprintln(deps.Stdout, docnav.FormatResults(results))
		return nil
	}

	for i, res := range results {
		doc := res.Document
		title := doc.Title
		if title == "" {
			title = doc.Href
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, title, doc.Href)
		if doc.Description != "" {
			fmt.Fprintf(deps.Stdout, "     %s\n", doc.Description)
		}
	}

	return nil
}
