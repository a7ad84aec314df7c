package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seokit"
	"github.com/fwojciec/seokit/bluemonday"
	"github.com/fwojciec/seokit/dateparse"
	"github.com/fwojciec/seokit/etree"
	"github.com/fwojciec/seokit/goquery"
	seohttp "github.com/fwojciec/seokit/http"
	seoprom "github.com/fwojciec/seokit/prometheus"
	seoslog "github.com/fwojciec/seokit/slog"
	"github.com/fwojciec/seokit/yaml"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now is the clock handed to every builder. Set before calling Run().
	Now func() time.Time

	// Services for end-to-end testing. Nil fields are replaced with the
	// production implementations in Run().
	Loader    seokit.SiteLoader
	Fetcher   seokit.SitemapFetcher
	Inspector seokit.HeadInspector
	Encoder   seokit.SitemapEncoder

	// Listener replaces the serve command's listen address when set.
	Listener net.Listener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seokit"),
		kong.Description("Render meta tags, robots.txt and sitemaps from a site description."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seokit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire services into dependencies
	recorder := seoprom.NewRecorder()
	registry := prometheus.NewRegistry()
	registry.MustRegister(recorder.Collectors()...)

	var encoder seokit.SitemapEncoder = m.Encoder
	if encoder == nil {
		encoder = etree.NewSitemapEncoder()
	}
	encoder = seoprom.NewSitemapEncoder(encoder, recorder)
	encoder = seoslog.NewLoggingSitemapEncoder(encoder, logger)
	dates := seoslog.NewLoggingDateResolver(dateparse.NewResolver(), logger)

	now := m.Now
	if now == nil {
		now = time.Now
	}

	deps.SitePath = cli.Site
	deps.Logger = logger
	deps.Registry = registry
	deps.Loader = m.Loader
	if deps.Loader == nil {
		deps.Loader = yaml.NewSiteLoader()
	}
	deps.Fetcher = m.Fetcher
	if deps.Fetcher == nil {
		deps.Fetcher = seohttp.NewSitemapFetcher(etree.NewDecoder())
	}
	deps.Sanitizer = bluemonday.NewSanitizer()
	deps.Inspector = m.Inspector
	if deps.Inspector == nil {
		deps.Inspector = goquery.NewHeadInspector()
	}
	deps.Listener = m.Listener
	deps.NewBuilder = func() *seokit.Builder {
		b := seokit.NewBuilder(encoder, dates)
		b.Now = now
		return b
	}

	return kongCtx.Run(deps)
}
