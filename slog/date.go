package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/seokit"
)

// Ensure LoggingDateResolver implements seokit.DateResolver.
var _ seokit.DateResolver = (*LoggingDateResolver)(nil)

// LoggingDateResolver wraps a DateResolver with debug logging.
type LoggingDateResolver struct {
	next   seokit.DateResolver
	logger *slog.Logger
}

// NewLoggingDateResolver creates a new LoggingDateResolver.
func NewLoggingDateResolver(next seokit.DateResolver, logger *slog.Logger) *LoggingDateResolver {
	return &LoggingDateResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver. Failures are logged at warn level.
func (r *LoggingDateResolver) Resolve(expr string, now time.Time) (t time.Time, err error) {
	defer func() {
		if err != nil {
			r.logger.Warn("date resolve", "expr", expr, "err", err)
			return
		}
		r.logger.Debug("date resolve", "expr", expr, "result", t.Format(time.RFC3339))
	}()
	return r.next.Resolve(expr, now)
}
