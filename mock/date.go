package mock

import (
	"time"

	"github.com/fwojciec/seokit"
)

var _ seokit.DateResolver = (*DateResolver)(nil)

// DateResolver is a mock implementation of seokit.DateResolver.
type DateResolver struct {
	ResolveFn func(expr string, now time.Time) (time.Time, error)
}

func (r *DateResolver) Resolve(expr string, now time.Time) (time.Time, error) {
	return r.ResolveFn(expr, now)
}
