package seokit

import (
	"strings"
)

// MetaKind is the attribute a meta tag uses to carry its key.
type MetaKind string

// MetaKind constants.
const (
	MetaName      MetaKind = "name"
	MetaProperty  MetaKind = "property"
	MetaContent   MetaKind = "content"
	MetaHTTPEquiv MetaKind = "http-equiv"
)

// MetaTag is a single key/value pair rendered as a meta tag.
type MetaTag struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// MetaTagSet is an ordered group of meta tags sharing one attribute kind.
type MetaTagSet struct {
	Kind MetaKind
	Tags []MetaTag
}

// HTML renders one meta tag per line, in insertion order.
func (s MetaTagSet) HTML() string {
	var sb strings.Builder
	for _, tag := range s.Tags {
		sb.WriteString(metaHTML(string(s.Kind), tag.Key, tag.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

// metaHTML renders a meta tag. Values are interpolated verbatim.
func metaHTML(attr, key, content string) string {
	return `<meta ` + attr + `="` + key + `" content="` + content + `">`
}

// SetCanonical stores the canonical URL of the page.
func (b *Builder) SetCanonical(url string) {
	b.canonical = url
}

// Canonical renders the canonical link tag.
func (b *Builder) Canonical() string {
	return `<link rel="canonical" href="` + b.canonical + `">`
}

// AddMetaBatch replaces the stored meta tags with tags, all rendered with kind.
// An empty kind renders as MetaName.
func (b *Builder) AddMetaBatch(kind MetaKind, tags ...MetaTag) {
	if kind == "" {
		kind = MetaName
	}
	b.metas = MetaTagSet{
		Kind: kind,
		Tags: append([]MetaTag(nil), tags...),
	}
}

// AddMetaSingle replaces the stored meta tags with a single tag.
// An empty kind renders as MetaContent.
//
// The kind is shared by every stored tag, so a single-tag call after
// AddMetaBatch also replaces the batch kind.
func (b *Builder) AddMetaSingle(name, value string, kind MetaKind) {
	if kind == "" {
		kind = MetaContent
	}
	b.metas = MetaTagSet{
		Kind: kind,
		Tags: []MetaTag{{Key: name, Value: value}},
	}
}

// MetaTags returns a copy of the stored meta tag set.
func (b *Builder) MetaTags() MetaTagSet {
	return MetaTagSet{
		Kind: b.metas.Kind,
		Tags: append([]MetaTag(nil), b.metas.Tags...),
	}
}

// Meta renders the stored meta tags, or "" when none are stored.
func (b *Builder) Meta() string {
	if len(b.metas.Tags) == 0 {
		return ""
	}
	return b.metas.HTML()
}

// EnableRobots renders a robots meta tag allowing indexing.
func (b *Builder) EnableRobots() string {
	return metaHTML(string(MetaName), "robots", "FOLLOW, INDEX")
}

// DisableRobots renders a robots meta tag forbidding indexing.
func (b *Builder) DisableRobots() string {
	return metaHTML(string(MetaName), "robots", "NOFOLLOW, NOINDEX")
}

// Charset renders a charset meta tag.
func (b *Builder) Charset(charset string) string {
	return `<meta charset="` + charset + `">`
}

// SetDescription stores the page description.
func (b *Builder) SetDescription(desc string) {
	b.description = desc
}

// Description renders the description meta tag.
func (b *Builder) Description() string {
	return metaHTML(string(MetaName), "description", b.description)
}

// SetKeywords appends keywords to the accumulated keyword list.
// Repeated calls never discard earlier keywords.
func (b *Builder) SetKeywords(keywords string) {
	if b.keywords == "" {
		b.keywords = keywords
		return
	}
	b.keywords += ", " + keywords
}

// Keywords renders the keywords meta tag.
func (b *Builder) Keywords() string {
	return metaHTML(string(MetaName), "keywords", b.keywords)
}

// Head renders the charset, canonical, description, keywords and stored
// meta tags in that order. Unset values are skipped; charset is skipped
// when empty.
func (b *Builder) Head(charset string) string {
	var parts []string
	if charset != "" {
		parts = append(parts, b.Charset(charset))
	}
	if b.canonical != "" {
		parts = append(parts, b.Canonical())
	}
	if b.description != "" {
		parts = append(parts, b.Description())
	}
	if b.keywords != "" {
		parts = append(parts, b.Keywords())
	}
	if meta := strings.TrimSuffix(b.Meta(), "\n"); meta != "" {
		parts = append(parts, meta)
	}
	return strings.Join(parts, "\n")
}
