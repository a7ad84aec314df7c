// Package prometheus records sitemap rendering metrics.
package prometheus

import (
	"time"

	"github.com/fwojciec/seokit"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the collectors updated by instrumented components.
type Recorder struct {
	documentsCounter  *prometheus.CounterVec
	entriesHistogram  prometheus.Histogram
	durationHistogram *prometheus.HistogramVec
}

// NewRecorder creates a Recorder. Register its Collectors before use.
func NewRecorder() *Recorder {
	return &Recorder{
		documentsCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seokit_documents_total",
				Help: "The number of sitemap documents encoded, by kind and outcome.",
			},
			[]string{"kind", "status"},
		),
		entriesHistogram: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seokit_sitemap_entries",
				Help:    "The number of <url> entries per encoded sitemap.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		durationHistogram: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "seokit_encode_duration_seconds",
				Help:    "The duration in seconds of encoding a sitemap document.",
				Buckets: prometheus.ExponentialBuckets(10e-6, 10, 6),
			},
			[]string{"kind"},
		),
	}
}

// Collectors returns the collectors to register.
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.documentsCounter, r.entriesHistogram, r.durationHistogram}
}

// RecordEncode records one encoded document of the given kind.
func (r *Recorder) RecordEncode(kind string, entries int, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.documentsCounter.WithLabelValues(kind, status).Inc()
	r.durationHistogram.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if kind == KindURLSet && err == nil {
		r.entriesHistogram.Observe(float64(entries))
	}
}

// Document kinds used as label values.
const (
	KindURLSet = "urlset"
	KindIndex  = "sitemapindex"
)

// Ensure SitemapEncoder implements seokit.SitemapEncoder.
var _ seokit.SitemapEncoder = (*SitemapEncoder)(nil)

// SitemapEncoder wraps a SitemapEncoder and records metrics for each call.
type SitemapEncoder struct {
	next     seokit.SitemapEncoder
	recorder *Recorder
}

// NewSitemapEncoder creates a new instrumented SitemapEncoder.
func NewSitemapEncoder(next seokit.SitemapEncoder, recorder *Recorder) *SitemapEncoder {
	return &SitemapEncoder{next: next, recorder: recorder}
}

// EncodeURLSet delegates to the wrapped encoder.
func (e *SitemapEncoder) EncodeURLSet(baseURL string, entries []seokit.SitemapEntry) (string, error) {
	start := time.Now()
	out, err := e.next.EncodeURLSet(baseURL, entries)
	e.recorder.RecordEncode(KindURLSet, len(entries), start, err)
	return out, err
}

// EncodeIndex delegates to the wrapped encoder.
func (e *SitemapEncoder) EncodeIndex(loc string, lastmod time.Time) (string, error) {
	start := time.Now()
	out, err := e.next.EncodeIndex(loc, lastmod)
	e.recorder.RecordEncode(KindIndex, 1, start, err)
	return out, err
}
