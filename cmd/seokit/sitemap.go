package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/seokit"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	site, b, err := deps.Builder()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}

	if c.Import {
		if err := importEntries(deps, site, b); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
			return err
		}
	}

	out, err := b.Render()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, out)
	return nil
}

// importEntries adds entries published by the live site that the site
// description does not already list. Live locations under the site URL are
// made relative to it; others are kept only when the site has no URL.
func importEntries(deps *Dependencies, site *seokit.Site, b *seokit.Builder) error {
	live, err := deps.Fetcher.FetchEntries(deps.Ctx, site.URL)
	if err != nil {
		return fmt.Errorf("importing from %s: %w", site.URL, err)
	}

	known := make(map[string]bool)
	for _, e := range b.Entries() {
		known[e.Location] = true
	}

	imported := 0
	for _, e := range live {
		loc, ok := strings.CutPrefix(e.Location, site.URL)
		if !ok || known[loc] {
			continue
		}
		known[loc] = true

		lastmod := ""
		if !e.LastModified.IsZero() {
			lastmod = e.LastModified.Format(seokit.SitemapDateLayout)
		}
		if err := b.AddItem(loc, lastmod, e.Priority, e.ChangeFrequency); err != nil {
			return err
		}
		imported++
	}

	deps.Logger.Info("sitemap import", "url", site.URL, "live", len(live), "imported", imported)
	return nil
}
