package main

import (
	"fmt"

	"github.com/fwojciec/docnav"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Query, c.Question)
	if err != nil {
		if docnav.ErrorCode(err) == docnav.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no documents match %q. Use 'docnav search' to explore the corpus.\n", c.Query)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docnav.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
