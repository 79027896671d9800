package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := docnav.DocumentFilter{}
	if c.Section != "" {
		filter.Section = &c.Section
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'docnav index' to index a directory.")
		return nil
	}

	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", doc.Href, title)
	}

	return nil
}
