// Package http adapts seokit to net/http servers. It supplies the current
// request URL to builders, scopes one builder to each request and serves
// robots.txt and sitemap documents.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/fwojciec/seokit"
)

// Ensure RequestContext implements seokit.RequestContext.
var _ seokit.RequestContext = (*RequestContext)(nil)

// RequestContext exposes an *http.Request to a seokit.Builder.
type RequestContext struct {
	r *http.Request
}

// NewRequestContext wraps r.
func NewRequestContext(r *http.Request) *RequestContext {
	return &RequestContext{r: r}
}

// RequestURL returns the scheme, host and path of the request. The scheme
// honours X-Forwarded-Proto so links are correct behind a TLS-terminating proxy.
func (c *RequestContext) RequestURL() string {
	return scheme(c.r) + "://" + c.r.Host + c.r.URL.Path
}

func scheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		// First value wins when proxies append to the header.
		return strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// context keys are unexported to avoid collisions
type ctxKey string

const ctxKeyBuilder ctxKey = "seokit_builder"

// NewContextWithBuilder returns a copy of ctx carrying b.
func NewContextWithBuilder(ctx context.Context, b *seokit.Builder) context.Context {
	return context.WithValue(ctx, ctxKeyBuilder, b)
}

// BuilderFromContext returns the builder stored in ctx, or nil.
func BuilderFromContext(ctx context.Context) *seokit.Builder {
	b, _ := ctx.Value(ctxKeyBuilder).(*seokit.Builder)
	return b
}

// Builders returns middleware that gives every request a fresh builder
// from newBuilder, wired to the request for Open Graph URL defaults.
func Builders(newBuilder func() *seokit.Builder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := newBuilder()
			b.Request = NewRequestContext(r)
			next.ServeHTTP(w, r.WithContext(NewContextWithBuilder(r.Context(), b)))
		})
	}
}
