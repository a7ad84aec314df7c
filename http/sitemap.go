package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/seokit"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure SitemapFetcher implements seokit.SitemapFetcher.
var _ seokit.SitemapFetcher = (*SitemapFetcher)(nil)

// SitemapFetcher retrieves the sitemap entries a live site publishes.
type SitemapFetcher struct {
	client  *http.Client
	decoder seokit.SitemapDecoder
}

// Option configures a SitemapFetcher.
type Option func(*SitemapFetcher)

// WithClient sets the HTTP client. Defaults to a client with DefaultFetchTimeout.
func WithClient(client *http.Client) Option {
	return func(f *SitemapFetcher) {
		f.client = client
	}
}

// NewSitemapFetcher creates a new SitemapFetcher decoding with decoder.
func NewSitemapFetcher(decoder seokit.SitemapDecoder, opts ...Option) *SitemapFetcher {
	f := &SitemapFetcher{
		client:  &http.Client{Timeout: DefaultFetchTimeout},
		decoder: decoder,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchEntries finds all entries from a site's sitemaps.
// Returns an empty slice (not nil) if no sitemaps are found.
// Entries are deduplicated by location; the first occurrence wins.
func (f *SitemapFetcher) FetchEntries(ctx context.Context, baseURL string) ([]seokit.SitemapEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, seokit.Errorf(seokit.EINVALID, "invalid base URL: %s", err)
	}
	// For sitemap discovery, use the root of the domain (strip any path)
	root := *base
	root.Path = ""
	root.RawQuery = ""

	sitemapURLs, err := f.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}

	entries := []seokit.SitemapEntry{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		found, err := f.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, e := range found {
			if !seenURLs[e.Location] {
				seenURLs[e.Location] = true
				entries = append(entries, e)
			}
		}
	}

	return entries, nil
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to /sitemap.xml.
func (f *SitemapFetcher) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := f.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := f.urlExists(ctx, sitemapURL.String())
	if err != nil {
		// Propagate context errors, treat other errors as "not found"
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}
	return nil, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (f *SitemapFetcher) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := f.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// processSitemap fetches and decodes a sitemap, following sitemap indexes.
func (f *SitemapFetcher) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]seokit.SitemapEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := f.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := f.decoder.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", sitemapURL, err)
	}

	if !doc.Index {
		return doc.URLs, nil
	}

	var entries []seokit.SitemapEntry
	for _, child := range doc.Sitemaps {
		found, err := f.processSitemap(ctx, child, seen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}
	return entries, nil
}

// fetchURL fetches a URL and returns the response body.
func (f *SitemapFetcher) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}

// urlExists checks if a URL returns 200 OK.
func (f *SitemapFetcher) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
