// Package etree encodes and decodes sitemap documents using beevik/etree.
package etree

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/seokit"
)

// Ensure types implement their seokit interfaces.
var (
	_ seokit.SitemapEncoder = (*SitemapEncoder)(nil)
	_ seokit.SitemapDecoder = (*Decoder)(nil)
)

// SitemapEncoder renders sitemaps.org 0.9 documents.
type SitemapEncoder struct {
	// Indent is the number of spaces used for pretty-printing.
	Indent int
}

// NewSitemapEncoder creates a new SitemapEncoder indenting with two spaces.
func NewSitemapEncoder() *SitemapEncoder {
	return &SitemapEncoder{Indent: 2}
}

// EncodeURLSet renders a <urlset> with one <url> per entry. Each <url>
// holds loc, lastmod, priority and changefreq, in that order.
func (e *SitemapEncoder) EncodeURLSet(baseURL string, entries []seokit.SitemapEntry) (string, error) {
	doc := newDocument()

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", seokit.SitemapNamespace)

	for _, entry := range entries {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(baseURL + entry.Location)
		u.CreateElement("lastmod").SetText(entry.LastModified.Format(seokit.SitemapDateLayout))
		u.CreateElement("priority").SetText(entry.Priority)
		u.CreateElement("changefreq").SetText(string(entry.ChangeFrequency))
	}

	return e.write(doc)
}

// EncodeIndex renders a <sitemapindex> holding a single <sitemap>.
func (e *SitemapEncoder) EncodeIndex(loc string, lastmod time.Time) (string, error) {
	doc := newDocument()

	index := doc.CreateElement("sitemapindex")
	index.CreateAttr("xmlns", seokit.SitemapNamespace)

	sitemap := index.CreateElement("sitemap")
	sitemap.CreateElement("loc").SetText(loc)
	sitemap.CreateElement("lastmod").SetText(lastmod.Format(seokit.IndexDateLayout))

	return e.write(doc)
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func (e *SitemapEncoder) write(doc *etree.Document) (string, error) {
	doc.Indent(e.Indent)
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("writing sitemap XML: %w", err)
	}
	return s, nil
}

// Decoder reads sitemap documents back into entries. It is the inverse of
// SitemapEncoder.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses a sitemap or sitemap index document.
// Entries with an unparseable lastmod keep a zero LastModified.
func (d *Decoder) Decode(r io.Reader) (*seokit.SitemapDocument, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, seokit.Errorf(seokit.EINVALID, "parsing sitemap XML: %s", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, seokit.Errorf(seokit.EINVALID, "empty sitemap XML")
	}

	switch root.Tag {
	case "sitemapindex":
		return d.decodeIndex(root), nil
	case "urlset":
		return d.decodeURLSet(root), nil
	default:
		return nil, seokit.Errorf(seokit.EINVALID, "unexpected root element <%s>", root.Tag)
	}
}

func (d *Decoder) decodeIndex(root *etree.Element) *seokit.SitemapDocument {
	sm := &seokit.SitemapDocument{Index: true}
	for _, sitemap := range root.SelectElements("sitemap") {
		if loc := childText(sitemap, "loc"); loc != "" {
			sm.Sitemaps = append(sm.Sitemaps, loc)
		}
	}
	return sm
}

func (d *Decoder) decodeURLSet(root *etree.Element) *seokit.SitemapDocument {
	sm := &seokit.SitemapDocument{}
	for _, u := range root.SelectElements("url") {
		loc := childText(u, "loc")
		if loc == "" {
			continue
		}
		entry := seokit.SitemapEntry{
			Location:        loc,
			Priority:        childText(u, "priority"),
			ChangeFrequency: seokit.ChangeFreq(childText(u, "changefreq")),
		}
		if lastmod := childText(u, "lastmod"); lastmod != "" {
			entry.LastModified = parseLastMod(lastmod)
		}
		sm.URLs = append(sm.URLs, entry)
	}
	return sm
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// parseLastMod accepts the W3C datetime forms allowed in sitemaps.
func parseLastMod(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00", seokit.SitemapDateLayout, "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
