package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seokit"
)

// Ensure HeadInspector implements seokit.HeadInspector.
var _ seokit.HeadInspector = (*HeadInspector)(nil)

// HeadInspector reads charset, canonical and meta tags out of HTML.
// Full documents and bare head fragments are both accepted.
type HeadInspector struct{}

// NewHeadInspector creates a new HeadInspector.
func NewHeadInspector() *HeadInspector {
	return &HeadInspector{}
}

// Inspect parses html and returns the metadata it declares, in document order.
func (i *HeadInspector) Inspect(html string) (*seokit.PageHead, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, seokit.Errorf(seokit.EINVALID, "parsing HTML: %s", err)
	}

	head := &seokit.PageHead{}

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		head.Canonical = href
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		if charset, ok := s.Attr("charset"); ok && head.Charset == "" {
			head.Charset = charset
			return
		}

		content := s.AttrOr("content", "")
		if prop, ok := s.Attr("property"); ok {
			head.Properties = append(head.Properties, seokit.MetaTag{Key: prop, Value: content})
			return
		}
		if name, ok := s.Attr("name"); ok {
			head.Meta = append(head.Meta, seokit.MetaTag{Key: name, Value: content})
			return
		}
		if equiv, ok := s.Attr("http-equiv"); ok {
			head.Meta = append(head.Meta, seokit.MetaTag{Key: equiv, Value: content})
		}
	})

	return head, nil
}
