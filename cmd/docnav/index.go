package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	res, err := deps.Ingester.IngestDir(deps.Ctx, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents (%d skipped, %d failed)\n",
		res.Indexed, res.Skipped, res.Failed)

	if res.Failed > 0 {
		return docnav.Errorf(docnav.EINTERNAL, "%d files failed to index", res.Failed)
	}
	return nil
}
