package visit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter provides per-domain rate limiting for document visits.
type Limiter interface {
	// Wait blocks until the rate limit allows a visit to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

var _ Limiter = (*DomainLimiter)(nil)

// DomainLimiter rate-limits visits per domain using token buckets. Each
// domain gets its own limiter with a burst of 1, so visits to one host are
// strictly paced while different hosts proceed independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps visits per second
// per domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a visit to the domain.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
