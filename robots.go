package seokit

import (
	"strings"
)

// Defaults applied to empty robots arguments.
const (
	DefaultUserAgent = "*"
	DefaultDisallow  = "*"
	DefaultNoIndex   = ""
)

// RobotsRules holds robots.txt directives. Each list is append-only and
// keeps insertion order. An empty sitemap marks a line that is not rendered.
type RobotsRules struct {
	Sitemaps   []string `yaml:"sitemaps"`
	UserAgents []string `yaml:"user_agents"`
	Disallow   []string `yaml:"disallow"`
	NoIndex    []string `yaml:"noindex"`
}

// String renders the rules as robots.txt content.
func (r RobotsRules) String() string {
	var sb strings.Builder
	for _, sitemap := range r.Sitemaps {
		if sitemap == "" {
			continue
		}
		sb.WriteString("Sitemap: " + sitemap + "\n")
	}
	for _, agent := range r.UserAgents {
		sb.WriteString("User-agent: " + agent + "\n")
	}
	// Disallow and Noindex lines keep a trailing space before the newline.
	for _, path := range r.Disallow {
		sb.WriteString("Disallow: " + path + " \n")
	}
	for _, path := range r.NoIndex {
		sb.WriteString("Noindex: " + path + " \n")
	}
	return sb.String()
}

// AddUserAgent appends a User-agent line. An empty agent means "*".
func (b *Builder) AddUserAgent(agent string) {
	if agent == "" {
		agent = DefaultUserAgent
	}
	b.robots.UserAgents = append(b.robots.UserAgents, agent)
}

// AddDisallow appends a Disallow line. An empty path means "*".
func (b *Builder) AddDisallow(path string) {
	if path == "" {
		path = DefaultDisallow
	}
	b.robots.Disallow = append(b.robots.Disallow, path)
}

// AddSitemap appends a Sitemap line. An empty url is recorded but not rendered.
func (b *Builder) AddSitemap(url string) {
	b.robots.Sitemaps = append(b.robots.Sitemaps, url)
}

// AddNoIndex appends a Noindex line.
func (b *Builder) AddNoIndex(path string) {
	if path == "" {
		path = DefaultNoIndex
	}
	b.robots.NoIndex = append(b.robots.NoIndex, path)
}

// Robots renders the accumulated directives as robots.txt content.
func (b *Builder) Robots() string {
	return b.robots.String()
}
