package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if (c.Href == "") == (c.Section == "") {
		fmt.Fprintf(deps.Stderr, "error: provide either an href or --section\n")
		return docnav.Errorf(docnav.EINVALID, "provide either an href or --section")
	}

	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docnav.Errorf(docnav.EINVALID, "use --force to confirm deletion")
	}

	if c.Section != "" {
		if err := deps.Documents.DeleteDocumentsBySection(deps.Ctx, c.Section); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted section %q\n", c.Section)
		return nil
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.Href); err != nil {
		if docnav.ErrorCode(err) == docnav.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'docnav list' to see indexed documents.\n", c.Href)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", c.Href)
	return nil
}
