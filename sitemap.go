package seokit

import (
	"context"
	"errors"
	"io"
	"time"
)

// SitemapNamespace is the XML namespace of sitemap and sitemap index documents.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Defaults applied by AddItem to empty arguments.
const (
	DefaultLastModified = "now"
	DefaultPriority     = "0.5"
	DefaultChangeFreq   = ChangeWeekly
)

// Layouts used when rendering sitemap dates.
const (
	SitemapDateLayout = "2006-01-02"
	IndexDateLayout   = time.RFC3339
)

// ChangeFreq is how frequently the page at a sitemap location is likely to change.
type ChangeFreq string

// ChangeFreq constants.
const (
	ChangeAlways  ChangeFreq = "always"
	ChangeHourly  ChangeFreq = "hourly"
	ChangeDaily   ChangeFreq = "daily"
	ChangeWeekly  ChangeFreq = "weekly"
	ChangeMonthly ChangeFreq = "monthly"
	ChangeYearly  ChangeFreq = "yearly"
	ChangeNever   ChangeFreq = "never"
)

// SitemapEntry is a single <url> of a sitemap.
type SitemapEntry struct {
	// Location is relative to the builder's base URL.
	Location        string     `json:"loc"`
	LastModified    time.Time  `json:"lastmod"`
	Priority        string     `json:"priority"`
	ChangeFrequency ChangeFreq `json:"changefreq"`
}

// SitemapEncoder encodes sitemap documents.
type SitemapEncoder interface {
	// EncodeURLSet encodes a <urlset> document. Each entry's location is
	// prefixed with baseURL.
	EncodeURLSet(baseURL string, entries []SitemapEntry) (string, error)

	// EncodeIndex encodes a <sitemapindex> document referencing the single
	// sitemap at loc.
	EncodeIndex(loc string, lastmod time.Time) (string, error)
}

// DateResolver turns a date expression such as "now", "-2 days" or
// "2024-03-01" into a concrete time, relative to now.
type DateResolver interface {
	Resolve(expr string, now time.Time) (time.Time, error)
}

// SetURL stores the prefix applied to every sitemap entry location.
func (b *Builder) SetURL(url string) {
	b.url = url
}

// SetPath stores the sitemap location referenced by the sitemap index.
func (b *Builder) SetPath(path string) {
	b.path = path
}

// AddItem appends a sitemap entry. Empty arguments take the package defaults.
// lastmod is resolved immediately; an unparseable expression returns a
// *DateParseError and leaves the entries unchanged.
func (b *Builder) AddItem(location, lastmod, priority string, changeFreq ChangeFreq) error {
	if lastmod == "" {
		lastmod = DefaultLastModified
	}
	if priority == "" {
		priority = DefaultPriority
	}
	if changeFreq == "" {
		changeFreq = DefaultChangeFreq
	}

	if b.Dates == nil {
		return Errorf(EINTERNAL, "date resolver not configured")
	}
	t, err := b.Dates.Resolve(lastmod, b.now())
	if err != nil {
		var de *DateParseError
		if errors.As(err, &de) {
			return de
		}
		return &DateParseError{Expr: lastmod, Err: err}
	}

	b.entries = append(b.entries, SitemapEntry{
		Location:        location,
		LastModified:    t,
		Priority:        priority,
		ChangeFrequency: changeFreq,
	})
	return nil
}

// Entries returns a copy of the accumulated sitemap entries.
func (b *Builder) Entries() []SitemapEntry {
	return append([]SitemapEntry(nil), b.entries...)
}

// Render encodes the accumulated entries as a sitemap document.
func (b *Builder) Render() (string, error) {
	if b.Sitemaps == nil {
		return "", Errorf(EINTERNAL, "sitemap encoder not configured")
	}
	return b.Sitemaps.EncodeURLSet(b.url, b.entries)
}

// RenderIndex encodes a sitemap index referencing the stored path, stamped
// with the current time. Only a single sitemap reference is supported.
func (b *Builder) RenderIndex() (string, error) {
	if b.Sitemaps == nil {
		return "", Errorf(EINTERNAL, "sitemap encoder not configured")
	}
	return b.Sitemaps.EncodeIndex(b.path, b.now())
}

// SitemapDocument is a decoded sitemap or sitemap index.
type SitemapDocument struct {
	// Index is true when the document is a <sitemapindex>.
	Index bool
	// URLs holds the <url> entries of a <urlset>. Locations are absolute.
	URLs []SitemapEntry
	// Sitemaps holds the <loc> values of a <sitemapindex>.
	Sitemaps []string
}

// SitemapDecoder parses sitemap documents.
type SitemapDecoder interface {
	Decode(r io.Reader) (*SitemapDocument, error)
}

// SitemapFetcher retrieves the entries a live site already publishes.
type SitemapFetcher interface {
	// FetchEntries finds the sitemaps of the site at baseURL, first from
	// robots.txt Sitemap directives and then from /sitemap.xml, resolves
	// sitemap indexes recursively and returns the union of their entries.
	FetchEntries(ctx context.Context, baseURL string) ([]SitemapEntry, error)
}
