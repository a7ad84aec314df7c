package http_test

import (
	"bytes"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/seokit"
	"github.com/fwojciec/seokit/dateparse"
	seoetree "github.com/fwojciec/seokit/etree"
	seohttp "github.com/fwojciec/seokit/http"
	seoprom "github.com/fwojciec/seokit/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serverNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestSite() *seokit.Site {
	return &seokit.Site{
		URL:  "https://example.com/",
		Path: "https://example.com/sitemap.xml",
		Entries: []seokit.SiteEntry{
			{Location: "page", LastMod: "now", Priority: "0.9", ChangeFreq: seokit.ChangeDaily},
		},
		Robots: seokit.RobotsRules{
			Sitemaps:   []string{"https://example.com/sitemap.xml"},
			UserAgents: []string{""},
			Disallow:   []string{"/admin"},
		},
	}
}

func newTestHandler(t *testing.T, site *seokit.Site, logs io.Writer) (*seohttp.Server, http.Handler) {
	t.Helper()

	rec := seoprom.NewRecorder()
	reg := prometheus.NewRegistry()
	reg.MustRegister(rec.Collectors()...)

	s := seohttp.NewServer()
	s.Site = site
	s.Gatherer = reg
	s.Logger = slog.New(slog.NewTextHandler(logs, nil))
	s.NewBuilder = func() *seokit.Builder {
		b := seokit.NewBuilder(
			seoprom.NewSitemapEncoder(seoetree.NewSitemapEncoder(), rec),
			dateparse.NewResolver(),
		)
		b.Now = func() time.Time { return serverNow }
		return b
	}
	return s, s.Handler()
}

func get(h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		r.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestServer_Robots(t *testing.T) {
	t.Parallel()

	_, h := newTestHandler(t, newTestSite(), io.Discard)

	rec := get(h, "/robots.txt", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Sitemap: https://example.com/sitemap.xml\nUser-agent: *\nDisallow: /admin \n", rec.Body.String())
}

func TestServer_Robots_RepeatedRequestsDoNotAccumulate(t *testing.T) {
	t.Parallel()

	_, h := newTestHandler(t, newTestSite(), io.Discard)

	first := get(h, "/robots.txt", nil)
	second := get(h, "/robots.txt", nil)

	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestServer_Sitemap(t *testing.T) {
	t.Parallel()

	_, h := newTestHandler(t, newTestSite(), io.Discard)

	rec := get(h, "/sitemap.xml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://example.com/page</loc>")
	assert.Contains(t, body, "<lastmod>2024-03-15</lastmod>")
	assert.Contains(t, body, "<priority>0.9</priority>")
	assert.Contains(t, body, "<changefreq>daily</changefreq>")
}

func TestServer_SitemapIndex(t *testing.T) {
	t.Parallel()

	_, h := newTestHandler(t, newTestSite(), io.Discard)

	rec := get(h, "/sitemap_index.xml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://example.com/sitemap.xml</loc>")
	assert.Contains(t, body, "<lastmod>2024-03-15T10:30:00Z</lastmod>")
}

func TestServer_ETag(t *testing.T) {
	t.Parallel()

	_, h := newTestHandler(t, newTestSite(), io.Discard)

	first := get(h, "/sitemap.xml", nil)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := get(h, "/sitemap.xml", http.Header{"If-None-Match": []string{etag}})

	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())
	assert.Equal(t, etag, second.Header().Get("ETag"))
}

func TestServer_InvalidSite(t *testing.T) {
	t.Parallel()

	site := newTestSite()
	site.Entries = append(site.Entries, seokit.SiteEntry{Location: "bad", LastMod: "whenever"})
	var logs bytes.Buffer
	_, h := newTestHandler(t, site, &logs)

	rec := get(h, "/sitemap.xml", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"whenever"`)
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	_, h := newTestHandler(t, newTestSite(), io.Discard)
	get(h, "/sitemap.xml", nil)

	rec := get(h, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `seokit_documents_total{kind="urlset",status="ok"} 1`)
}

func TestServer_Healthz(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	_, h := newTestHandler(t, newTestSite(), &logs)

	rec := get(h, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.True(t, strings.Contains(logs.String(), "path=/healthz"))
	assert.Contains(t, logs.String(), "status=200")
}

func TestServer_OpenServeClose(t *testing.T) {
	t.Parallel()

	s, _ := newTestHandler(t, newTestSite(), io.Discard)
	s.Addr = "127.0.0.1:0"
	require.NoError(t, s.Open())

	served := make(chan error, 1)
	go func() { served <- s.Serve() }()

	resp, err := http.Get(s.URL() + "/robots.txt")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "User-agent: *")

	require.NoError(t, s.Close())
	assert.NoError(t, <-served)
}

func TestServer_Serve_ReturnsListenerErrors(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	s, _ := newTestHandler(t, newTestSite(), io.Discard)
	s.Listener = ln
	require.NoError(t, s.Open())

	err = s.Serve()

	require.Error(t, err)
	assert.NotErrorIs(t, err, http.ErrServerClosed)
	assert.Contains(t, err.Error(), "serving on")
}

func TestServer_Serve_RequiresOpen(t *testing.T) {
	t.Parallel()

	s, _ := newTestHandler(t, newTestSite(), io.Discard)

	assert.Equal(t, seokit.EINTERNAL, seokit.ErrorCode(s.Serve()))
}

func TestServer_Open_RequiresSite(t *testing.T) {
	t.Parallel()

	s := seohttp.NewServer()

	assert.Equal(t, seokit.EINVALID, seokit.ErrorCode(s.Open()))
}
