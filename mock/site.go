package mock

import (
	"io"

	"github.com/fwojciec/seokit"
)

var (
	_ seokit.SiteLoader    = (*SiteLoader)(nil)
	_ seokit.Sanitizer     = (*Sanitizer)(nil)
	_ seokit.HeadInspector = (*HeadInspector)(nil)
)

// SiteLoader is a mock implementation of seokit.SiteLoader.
type SiteLoader struct {
	LoadSiteFn func(r io.Reader) (*seokit.Site, error)
}

func (l *SiteLoader) LoadSite(r io.Reader) (*seokit.Site, error) {
	return l.LoadSiteFn(r)
}

// Sanitizer is a mock implementation of seokit.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(s string) string
}

func (s *Sanitizer) Sanitize(v string) string {
	return s.SanitizeFn(v)
}

// HeadInspector is a mock implementation of seokit.HeadInspector.
type HeadInspector struct {
	InspectFn func(html string) (*seokit.PageHead, error)
}

func (i *HeadInspector) Inspect(html string) (*seokit.PageHead, error) {
	return i.InspectFn(html)
}
