package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/seokit"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	html, err := readInput(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	head, err := deps.Inspector.Inspect(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}

	if head.Charset != "" {
		fmt.Fprintf(deps.Stdout, "charset    %s\n", head.Charset)
	}
	if head.Canonical != "" {
		fmt.Fprintf(deps.Stdout, "canonical  %s\n", head.Canonical)
	}
	for _, t := range head.Meta {
		fmt.Fprintf(deps.Stdout, "meta       %s = %s\n", t.Key, t.Value)
	}
	for _, t := range head.Properties {
		fmt.Fprintf(deps.Stdout, "property   %s = %s\n", t.Key, t.Value)
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
