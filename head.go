package seokit

// PageHead is the search-engine metadata found in an HTML document.
type PageHead struct {
	Charset   string
	Canonical string
	// Meta holds name/http-equiv meta tags in document order.
	Meta []MetaTag
	// Properties holds property meta tags (og:* and friends) in document order.
	Properties []MetaTag
}

// Lookup returns the content of the first name meta tag with the given key.
func (h *PageHead) Lookup(name string) (string, bool) {
	for _, t := range h.Meta {
		if t.Key == name {
			return t.Value, true
		}
	}
	return "", false
}

// Property returns the content of the first property meta tag with the given key.
func (h *PageHead) Property(name string) (string, bool) {
	for _, t := range h.Properties {
		if t.Key == name {
			return t.Value, true
		}
	}
	return "", false
}

// HeadInspector extracts metadata from HTML documents or fragments.
type HeadInspector interface {
	Inspect(html string) (*PageHead, error)
}
