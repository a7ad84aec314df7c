package main

import (
	"fmt"

	"github.com/fwojciec/seokit"
)

// Run executes the robots command.
func (c *RobotsCmd) Run(deps *Dependencies) error {
	_, b, err := deps.Builder()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, b.Robots())
	return nil
}
