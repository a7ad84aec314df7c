package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/seokit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ShutdownTimeout is the time given for outstanding requests to finish before shutdown.
const ShutdownTimeout = 5 * time.Second

// Server serves robots.txt and sitemap documents for a single site.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Bind address to open.
	Addr string

	// Listener, when set, is served instead of listening on Addr.
	Listener net.Listener

	// Site rendered on every request.
	Site *seokit.Site

	// NewBuilder returns a fresh builder per request.
	NewBuilder func() *seokit.Builder

	// Sanitizer is applied when Site.Sanitize is set. May be nil.
	Sanitizer seokit.Sanitizer

	// Gatherer backs /metrics when non-nil.
	Gatherer prometheus.Gatherer

	Logger *slog.Logger
}

// NewServer returns a new Server. Fields must be set before Open or Handler.
func NewServer() *Server {
	return &Server{
		server: &http.Server{
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Logger: slog.Default(),
	}
}

// Handler builds the router. It is safe to call more than once.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(Builders(s.NewBuilder))
		r.Get("/robots.txt", s.handleRobots)
		r.Get("/sitemap.xml", s.handleSitemap)
		r.Get("/sitemap_index.xml", s.handleSitemapIndex)
	})

	return r
}

// Open begins listening on the bind address. Call Serve to accept connections.
func (s *Server) Open() (err error) {
	if s.Site == nil {
		return seokit.Errorf(seokit.EINVALID, "site required")
	}
	if s.NewBuilder == nil {
		return seokit.Errorf(seokit.EINVALID, "builder constructor required")
	}
	if s.Listener != nil {
		s.ln = s.Listener
	} else if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	s.server.Handler = s.Handler()
	return nil
}

// Serve accepts connections on the opened listener until Close is called.
// It returns nil after a graceful Close.
func (s *Server) Serve() error {
	if s.ln == nil {
		return seokit.Errorf(seokit.EINTERNAL, "server not open")
	}
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving on %s: %w", s.ln.Addr(), err)
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// builder returns the request's builder with the site applied.
func (s *Server) builder(r *http.Request) (*seokit.Builder, error) {
	b := BuilderFromContext(r.Context())
	if b == nil {
		return nil, seokit.Errorf(seokit.EINTERNAL, "no builder in request context")
	}
	if err := s.Site.Apply(b, s.Sanitizer); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	b, err := s.builder(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.write(w, r, "text/plain; charset=utf-8", b.Robots())
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	b, err := s.builder(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	out, err := b.Render()
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.write(w, r, "application/xml; charset=utf-8", out)
}

func (s *Server) handleSitemapIndex(w http.ResponseWriter, r *http.Request) {
	b, err := s.builder(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	out, err := b.RenderIndex()
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.write(w, r, "application/xml; charset=utf-8", out)
}

// write sends body with a content-derived ETag, answering conditional
// requests with 304 Not Modified.
func (s *Server) write(w http.ResponseWriter, r *http.Request, contentType, body string) {
	etag := `"` + strconv.FormatUint(xxhash.Sum64String(body), 16) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write([]byte(body))
}

// Error writes err as a plain-text response with a status matching its code.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := seokit.ErrorCode(err), seokit.ErrorMessage(err)
	if code == seokit.EINTERNAL {
		s.Logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"err", err,
		)
	}
	http.Error(w, message, ErrorStatusCode(code))
}

// ErrorStatusCode maps an application error code to an HTTP status code.
func ErrorStatusCode(code string) int {
	switch code {
	case seokit.EINVALID:
		return http.StatusUnprocessableEntity
	case seokit.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(begin),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
