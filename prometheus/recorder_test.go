package prometheus_test

import (
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/seokit"
	"github.com/fwojciec/seokit/mock"
	seoprom "github.com/fwojciec/seokit/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, rec *seoprom.Recorder) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	reg.MustRegister(rec.Collectors()...)
	return reg
}

func family(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric family %s not gathered", name)
	return nil
}

func labels(m *dto.Metric) map[string]string {
	out := make(map[string]string)
	for _, pair := range m.GetLabel() {
		out[pair.GetName()] = pair.GetValue()
	}
	return out
}

func TestSitemapEncoder_RecordsMetrics(t *testing.T) {
	t.Parallel()

	rec := seoprom.NewRecorder()
	reg := newRegistry(t, rec)

	fail := true
	inner := &mock.SitemapEncoder{
		EncodeURLSetFn: func(string, []seokit.SitemapEntry) (string, error) {
			return "<urlset/>", nil
		},
		EncodeIndexFn: func(string, time.Time) (string, error) {
			if fail {
				return "", errors.New("boom")
			}
			return "<sitemapindex/>", nil
		},
	}
	enc := seoprom.NewSitemapEncoder(inner, rec)

	out, err := enc.EncodeURLSet("https://example.com/", []seokit.SitemapEntry{{Location: "a"}, {Location: "b"}, {Location: "c"}})
	require.NoError(t, err)
	assert.Equal(t, "<urlset/>", out)

	_, err = enc.EncodeIndex("https://example.com/sitemap.xml", time.Now())
	require.Error(t, err)

	counts := map[string]float64{}
	for _, m := range family(t, reg, "seokit_documents_total").GetMetric() {
		l := labels(m)
		counts[l["kind"]+"/"+l["status"]] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"urlset/ok": 1, "sitemapindex/error": 1}, counts)

	entries := family(t, reg, "seokit_sitemap_entries").GetMetric()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(1), entries[0].GetHistogram().GetSampleCount())
	assert.Equal(t, float64(3), entries[0].GetHistogram().GetSampleSum())

	durations := family(t, reg, "seokit_encode_duration_seconds").GetMetric()
	assert.Len(t, durations, 2)
}
