package seokit

import (
	"time"
)

// RequestContext supplies details of the HTTP request currently being served.
type RequestContext interface {
	// RequestURL returns the scheme, host and path of the current request.
	RequestURL() string
}

// Builder accumulates page metadata, sitemap entries and robots directives
// and renders them on demand.
//
// A Builder is meant to live for a single request. It is not safe for
// concurrent mutation.
type Builder struct {
	// Sitemaps encodes sitemap and sitemap index documents.
	Sitemaps SitemapEncoder

	// Dates resolves last-modified expressions passed to AddItem.
	Dates DateResolver

	// Request supplies the default Open Graph URL. May be nil.
	Request RequestContext

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	metas       MetaTagSet
	canonical   string
	description string
	keywords    string

	url     string
	path    string
	entries []SitemapEntry

	robots RobotsRules
}

// NewBuilder returns a Builder wired to the given sitemap encoder and date resolver.
func NewBuilder(sitemaps SitemapEncoder, dates DateResolver) *Builder {
	return &Builder{
		Sitemaps: sitemaps,
		Dates:    dates,
		Now:      time.Now,
	}
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}
