package mock

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/seokit"
)

var _ seokit.SitemapEncoder = (*SitemapEncoder)(nil)

// SitemapEncoder is a mock implementation of seokit.SitemapEncoder.
type SitemapEncoder struct {
	EncodeURLSetFn func(baseURL string, entries []seokit.SitemapEntry) (string, error)
	EncodeIndexFn  func(loc string, lastmod time.Time) (string, error)
}

func (e *SitemapEncoder) EncodeURLSet(baseURL string, entries []seokit.SitemapEntry) (string, error) {
	return e.EncodeURLSetFn(baseURL, entries)
}

func (e *SitemapEncoder) EncodeIndex(loc string, lastmod time.Time) (string, error) {
	return e.EncodeIndexFn(loc, lastmod)
}

var (
	_ seokit.SitemapDecoder = (*SitemapDecoder)(nil)
	_ seokit.SitemapFetcher = (*SitemapFetcher)(nil)
)

// SitemapDecoder is a mock implementation of seokit.SitemapDecoder.
type SitemapDecoder struct {
	DecodeFn func(r io.Reader) (*seokit.SitemapDocument, error)
}

func (d *SitemapDecoder) Decode(r io.Reader) (*seokit.SitemapDocument, error) {
	return d.DecodeFn(r)
}

// SitemapFetcher is a mock implementation of seokit.SitemapFetcher.
type SitemapFetcher struct {
	FetchEntriesFn func(ctx context.Context, baseURL string) ([]seokit.SitemapEntry, error)
}

func (f *SitemapFetcher) FetchEntries(ctx context.Context, baseURL string) ([]seokit.SitemapEntry, error) {
	return f.FetchEntriesFn(ctx, baseURL)
}
