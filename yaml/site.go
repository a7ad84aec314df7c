// Package yaml loads site descriptions from YAML documents.
package yaml

import (
	"errors"
	"io"

	"github.com/fwojciec/seokit"
	"gopkg.in/yaml.v3"
)

// Ensure SiteLoader implements seokit.SiteLoader.
var _ seokit.SiteLoader = (*SiteLoader)(nil)

// SiteLoader decodes seokit.Site values from YAML.
type SiteLoader struct {
	// Strict rejects unknown keys.
	Strict bool
}

// NewSiteLoader creates a new SiteLoader that rejects unknown keys.
func NewSiteLoader() *SiteLoader {
	return &SiteLoader{Strict: true}
}

// LoadSite decodes and validates a single site document.
func (l *SiteLoader) LoadSite(r io.Reader) (*seokit.Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(l.Strict)

	var site seokit.Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, seokit.Errorf(seokit.EINVALID, "empty site document")
		}
		return nil, seokit.Errorf(seokit.EINVALID, "decoding site: %s", err)
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}
