package main

import (
	"fmt"

	"github.com/fwojciec/seokit"
	seohttp "github.com/fwojciec/seokit/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// or serving fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	site, err := deps.LoadSite()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seokit.ErrorMessage(err))
		return err
	}

	s := seohttp.NewServer()
	s.Addr = c.Addr
	s.Listener = deps.Listener
	s.Site = site
	s.NewBuilder = deps.NewBuilder
	s.Sanitizer = deps.Sanitizer
	s.Gatherer = deps.Registry
	s.Logger = deps.Logger

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %s\n", c.Addr, err)
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	deps.Logger.Info("listening", "url", s.URL())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(s.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return s.Close()
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}
