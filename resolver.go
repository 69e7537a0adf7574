package cinelink

import "context"

// Resolver turns site URLs into final download links.
type Resolver interface {
	// Resolve follows a content page or redirector URL to its hosting page.
	// Failures are reported in the returned Outcome, never as an error.
	Resolve(ctx context.Context, url string) *Outcome

	// Entries fetches a content page and returns its download entries.
	Entries(ctx context.Context, url string) ([]DownloadEntry, error)

	// Seasons fetches a TV show page and returns its seasons and episodes.
	Seasons(ctx context.Context, url string) ([]Season, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
