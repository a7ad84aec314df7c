package main

import (
	"fmt"

	"github.com/fwojciec/seokit"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	_, b, err := deps.Builder()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}

	out, err := b.RenderIndex()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, out)
	return nil
}
