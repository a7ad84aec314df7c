// Package bluemonday sanitizes untrusted values before they reach a Builder.
package bluemonday

import (
	"html"
	"strings"

	"github.com/fwojciec/seokit"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements seokit.Sanitizer.
var _ seokit.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips all markup from values and makes them safe to place
// inside a double-quoted attribute on a single line.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer using bluemonday's strict policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize removes tags, collapses line breaks into spaces and escapes quotes.
func (s *Sanitizer) Sanitize(v string) string {
	// StrictPolicy output is HTML-escaped; unescape first so entities
	// are not double-encoded below.
	clean := html.UnescapeString(s.policy.Sanitize(v))
	clean = strings.Join(strings.Fields(clean), " ")
	return html.EscapeString(clean)
}
