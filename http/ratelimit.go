package http

import (
	"context"
	"sync"

	"github.com/fwojciec/newsynth"
	"golang.org/x/time/rate"
)

var _ newsynth.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same host. Each host gets its
// own token bucket with a burst of one, created on first use.
type DomainLimiter struct {
	limit rate.Limit

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter returns a DomainLimiter allowing rps requests per second
// to each host. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limit: limit,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until host may be contacted again or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.bucket(host).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.hosts[host]
	if !ok {
		b = rate.NewLimiter(d.limit, 1)
		d.hosts[host] = b
	}
	return b
}
