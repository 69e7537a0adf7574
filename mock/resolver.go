package mock

import (
	"context"

	"github.com/fwojciec/cinelink"
)

var _ cinelink.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of cinelink.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, url string) *cinelink.Outcome
	EntriesFn func(ctx context.Context, url string) ([]cinelink.DownloadEntry, error)
	SeasonsFn func(ctx context.Context, url string) ([]cinelink.Season, error)
}

func (r *Resolver) Resolve(ctx context.Context, url string) *cinelink.Outcome {
	return r.ResolveFn(ctx, url)
}

func (r *Resolver) Entries(ctx context.Context, url string) ([]cinelink.DownloadEntry, error) {
	return r.EntriesFn(ctx, url)
}

func (r *Resolver) Seasons(ctx context.Context, url string) ([]cinelink.Season, error) {
	return r.SeasonsFn(ctx, url)
}

var _ cinelink.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of cinelink.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
