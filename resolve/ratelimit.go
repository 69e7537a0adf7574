package resolve

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/cinelink"
	"golang.org/x/time/rate"
)

var _ cinelink.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so requests to different hosts do not
// wait on each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain, with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
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

var _ cinelink.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on a DomainLimiter keyed by the URL host before each
// fetch.
type LimitedFetcher struct {
	next    cinelink.Fetcher
	limiter cinelink.DomainLimiter
}

// NewLimitedFetcher wraps next with per-domain rate limiting.
func NewLimitedFetcher(next cinelink.Fetcher, limiter cinelink.DomainLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the host's turn and then delegates.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", cinelink.Errorf(cinelink.EINVALID, "invalid URL %q", rawURL)
	}
	if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close closes the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
