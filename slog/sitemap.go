package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/seokit"
)

// Ensure LoggingSitemapEncoder implements seokit.SitemapEncoder.
var _ seokit.SitemapEncoder = (*LoggingSitemapEncoder)(nil)

// LoggingSitemapEncoder wraps a SitemapEncoder with logging.
type LoggingSitemapEncoder struct {
	next   seokit.SitemapEncoder
	logger *slog.Logger
}

// NewLoggingSitemapEncoder creates a new LoggingSitemapEncoder.
func NewLoggingSitemapEncoder(next seokit.SitemapEncoder, logger *slog.Logger) *LoggingSitemapEncoder {
	return &LoggingSitemapEncoder{next: next, logger: logger}
}

// EncodeURLSet delegates to the wrapped encoder and logs the operation.
func (e *LoggingSitemapEncoder) EncodeURLSet(baseURL string, entries []seokit.SitemapEntry) (out string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("sitemap encode",
			"kind", "urlset",
			"url", baseURL,
			"entries", len(entries),
			"bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EncodeURLSet(baseURL, entries)
}

// EncodeIndex delegates to the wrapped encoder and logs the operation.
func (e *LoggingSitemapEncoder) EncodeIndex(loc string, lastmod time.Time) (out string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("sitemap encode",
			"kind", "sitemapindex",
			"url", loc,
			"bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EncodeIndex(loc, lastmod)
}
