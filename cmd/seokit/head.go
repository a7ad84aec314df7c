package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/seokit"
)

// staticURL supplies a fixed page URL as the current request.
type staticURL string

func (u staticURL) RequestURL() string { return string(u) }

// Run executes the head command.
func (c *HeadCmd) Run(deps *Dependencies) error {
	if c.Robots != "" && c.Robots != "index" && c.Robots != "noindex" {
		err := seokit.Errorf(seokit.EINVALID, "--robots must be index or noindex, got %q", c.Robots)
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}

	site, b, err := deps.Builder()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}
	if c.URL != "" {
		b.Request = staticURL(c.URL)
	}

	parts := []string{b.Head(site.Charset)}
	switch c.Robots {
	case "index":
		parts = append(parts, b.EnableRobots())
	case "noindex":
		parts = append(parts, b.DisableRobots())
	}
	if og := strings.TrimSuffix(site.OpenGraphTags(b, deps.Sanitizer), "\n"); og != "" {
		parts = append(parts, og)
	}

	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	fmt.Fprintln(deps.Stdout, strings.Join(out, "\n"))
	return nil
}
