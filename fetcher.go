package cinelink

import "context"

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch retrieves the markup at url, following redirects.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
