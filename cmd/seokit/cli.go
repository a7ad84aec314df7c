package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/fwojciec/seokit"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	SitePath   string
	Loader     seokit.SiteLoader
	Fetcher    seokit.SitemapFetcher
	Sanitizer  seokit.Sanitizer
	Inspector  seokit.HeadInspector
	Registry   *prometheus.Registry
	Listener   net.Listener
	NewBuilder func() *seokit.Builder
}

// LoadSite reads the site description named by SitePath. "-" reads stdin.
func (d *Dependencies) LoadSite() (*seokit.Site, error) {
	if d.SitePath == "-" {
		return d.Loader.LoadSite(os.Stdin)
	}
	f, err := os.Open(d.SitePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, seokit.Errorf(seokit.ENOTFOUND, "site file %q not found", d.SitePath)
		}
		return nil, err
	}
	defer f.Close()

	site, err := d.Loader.LoadSite(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.SitePath, err)
	}
	return site, nil
}

// Builder loads the site and returns a fresh builder with it applied.
func (d *Dependencies) Builder() (*seokit.Site, *seokit.Builder, error) {
	site, err := d.LoadSite()
	if err != nil {
		return nil, nil, err
	}
	b := d.NewBuilder()
	if err := site.Apply(b, d.Sanitizer); err != nil {
		return nil, nil, err
	}
	return site, b, nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Site    string `short:"s" env:"SEOKIT_SITE" default:"site.yaml" help:"Site description file (YAML, '-' for stdin)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Sitemap SitemapCmd `cmd:"" help:"Render the sitemap XML document"`
	Index   IndexCmd   `cmd:"" help:"Render the sitemap index XML document"`
	Robots  RobotsCmd  `cmd:"" help:"Render robots.txt"`
	Head    HeadCmd    `cmd:"" help:"Render head meta tags"`
	Inspect InspectCmd `cmd:"" help:"List meta tags found in an HTML file"`
	Serve   ServeCmd   `cmd:"" help:"Serve robots.txt and sitemaps over HTTP"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	Import bool `short:"i" help:"Merge entries the live site already publishes"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// RobotsCmd is the "robots" subcommand.
type RobotsCmd struct{}

// HeadCmd is the "head" subcommand.
type HeadCmd struct {
	URL    string `short:"u" help:"Page URL used as the Open Graph fallback link"`
	Robots string `help:"Append a robots meta tag: index or noindex"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File string `arg:"" help:"HTML file to inspect ('-' for stdin)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" env:"SEOKIT_ADDR" default:":8080" help:"HTTP listen address"`
}
