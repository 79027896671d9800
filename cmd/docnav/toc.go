package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docnav"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByHref(deps.Ctx, c.Href)
	if err != nil {
		if docnav.ErrorCode(err) == docnav.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'docnav list' to see indexed documents.\n", c.Href)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		}
		return err
	}

	headings := docnav.ExtractHeadings(doc.Content)
	if len(headings) == 0 {
		fmt.Fprintln(deps.Stdout, "No headings found.")
		return nil
	}

	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		fmt.Fprintf(deps.Stdout, "%s- %s (#%s)\n", indent, h.Title, h.ID)
	}

	return nil
}
