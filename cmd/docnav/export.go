package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
	"github.com/fwojciec/docnav/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, docnav.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents to export. Use 'docnav index' to index a directory.")
		return nil
	}

	exp := fs.NewExporter(c.Dir, c.Name)
	for _, doc := range docs {
		if err := exp.Save(deps.Ctx, doc); err != nil {
			_ = exp.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
			return err
		}
	}
	if err := exp.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents\n", len(docs))
	return nil
}
