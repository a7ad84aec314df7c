package mock

import "github.com/fwojciec/seokit"

var _ seokit.RequestContext = (*RequestContext)(nil)

// RequestContext is a mock implementation of seokit.RequestContext.
type RequestContext struct {
	RequestURLFn func() string
}

func (r *RequestContext) RequestURL() string {
	return r.RequestURLFn()
}
