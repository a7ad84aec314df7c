package seokit

import (
	"fmt"
	"io"
)

// Site describes the search-engine metadata of one site. It is the
// declarative form of a sequence of Builder calls.
type Site struct {
	URL         string      `yaml:"url"`
	Path        string      `yaml:"path"`
	Charset     string      `yaml:"charset"`
	Canonical   string      `yaml:"canonical"`
	Description string      `yaml:"description"`
	Keywords    []string    `yaml:"keywords"`
	Meta        SiteMeta    `yaml:"meta"`
	OpenGraph   *OpenGraph  `yaml:"opengraph"`
	Sanitize    bool        `yaml:"sanitize"`
	Entries     []SiteEntry `yaml:"entries"`
	Robots      RobotsRules `yaml:"robots"`
}

// SiteMeta is the meta tag group of a Site.
type SiteMeta struct {
	Kind MetaKind  `yaml:"kind"`
	Tags []MetaTag `yaml:"tags"`
}

// SiteEntry is the unresolved form of a SitemapEntry.
type SiteEntry struct {
	Location   string     `yaml:"loc"`
	LastMod    string     `yaml:"lastmod"`
	Priority   string     `yaml:"priority"`
	ChangeFreq ChangeFreq `yaml:"changefreq"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.URL == "" && len(s.Entries) > 0 {
		return Errorf(EINVALID, "site url required when entries are listed")
	}
	for i, e := range s.Entries {
		if e.Location == "" {
			return Errorf(EINVALID, "entry %d: location required", i)
		}
	}
	return nil
}

// Apply replays the site onto b. When the site asks for sanitizing and
// sanitizer is non-nil, head values are passed through it first.
// Sitemap locations and robots directives are never sanitized.
func (s *Site) Apply(b *Builder, sanitizer Sanitizer) error {
	if err := s.Validate(); err != nil {
		return err
	}

	clean := func(v string) string { return v }
	if s.Sanitize && sanitizer != nil {
		clean = sanitizer.Sanitize
	}

	b.SetURL(s.URL)
	b.SetPath(s.Path)
	if s.Canonical != "" {
		b.SetCanonical(clean(s.Canonical))
	}
	if s.Description != "" {
		b.SetDescription(clean(s.Description))
	}
	for _, kw := range s.Keywords {
		b.SetKeywords(clean(kw))
	}
	if len(s.Meta.Tags) > 0 {
		tags := make([]MetaTag, 0, len(s.Meta.Tags))
		for _, t := range s.Meta.Tags {
			tags = append(tags, MetaTag{Key: clean(t.Key), Value: clean(t.Value)})
		}
		b.AddMetaBatch(s.Meta.Kind, tags...)
	}

	for _, e := range s.Entries {
		if err := b.AddItem(e.Location, e.LastMod, e.Priority, e.ChangeFreq); err != nil {
			return fmt.Errorf("entry %q: %w", e.Location, err)
		}
	}

	for _, v := range s.Robots.Sitemaps {
		b.AddSitemap(v)
	}
	for _, v := range s.Robots.UserAgents {
		b.AddUserAgent(v)
	}
	for _, v := range s.Robots.Disallow {
		b.AddDisallow(v)
	}
	for _, v := range s.Robots.NoIndex {
		b.AddNoIndex(v)
	}
	return nil
}

// OpenGraphTags renders the site's Open Graph tags, or "" if none are configured.
func (s *Site) OpenGraphTags(b *Builder, sanitizer Sanitizer) string {
	if s.OpenGraph == nil {
		return ""
	}
	og := *s.OpenGraph
	if s.Sanitize && sanitizer != nil {
		og.SiteName = sanitizer.Sanitize(og.SiteName)
		og.Title = sanitizer.Sanitize(og.Title)
		og.Description = sanitizer.Sanitize(og.Description)
		og.Image = sanitizer.Sanitize(og.Image)
		og.URL = sanitizer.Sanitize(og.URL)
	}
	return b.FacebookTags(og)
}

// SiteLoader reads site descriptions.
type SiteLoader interface {
	LoadSite(r io.Reader) (*Site, error)
}

// Sanitizer cleans untrusted values before they are interpolated into
// rendered output. Builder never escapes values itself.
type Sanitizer interface {
	Sanitize(s string) string
}
