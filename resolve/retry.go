// Package resolve implements the resolution pipeline on top of the
// cinelink Fetcher and extractor interfaces.
package resolve

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cinelink"
)

// Retry defaults.
const (
	DefaultAttempts  = 3
	DefaultBaseDelay = time.Second
)

var _ cinelink.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries a failed fetch with linear backoff: after attempt n
// fails it waits n*baseDelay before the next one. When every attempt fails
// it returns a *cinelink.FetchError wrapping the last error.
type RetryFetcher struct {
	next      cinelink.Fetcher
	attempts  int
	baseDelay time.Duration
	logger    *slog.Logger
}

// RetryOption configures a RetryFetcher.
type RetryOption func(*RetryFetcher)

// WithAttempts sets the total number of attempts, the first one included.
// Values below 1 are treated as 1.
func WithAttempts(n int) RetryOption {
	return func(f *RetryFetcher) {
		f.attempts = max(n, 1)
	}
}

// WithBaseDelay sets the backoff unit.
func WithBaseDelay(d time.Duration) RetryOption {
	return func(f *RetryFetcher) {
		f.baseDelay = d
	}
}

// WithLogger sets the logger used for per-attempt diagnostics.
func WithLogger(logger *slog.Logger) RetryOption {
	return func(f *RetryFetcher) {
		f.logger = logger
	}
}

// NewRetryFetcher wraps next with retries.
func NewRetryFetcher(next cinelink.Fetcher, opts ...RetryOption) *RetryFetcher {
	f := &RetryFetcher{
		next:      next,
		attempts:  DefaultAttempts,
		baseDelay: DefaultBaseDelay,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves url, retrying on any error until the attempt budget is
// spent or ctx is done.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= f.attempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			f.logger.Debug("fetch attempt", "url", url, "attempt", attempt, "outcome", "ok")
			return html, nil
		}
		lastErr = err

		if attempt == f.attempts {
			f.logger.Warn("fetch attempt", "url", url, "attempt", attempt, "outcome", "failed", "err", err)
			break
		}
		f.logger.Debug("fetch attempt", "url", url, "attempt", attempt, "outcome", "retry", "err", err)

		select {
		case <-ctx.Done():
			return "", &cinelink.FetchError{URL: url, Attempts: attempt, Err: ctx.Err()}
		case <-time.After(time.Duration(attempt) * f.baseDelay):
		}
	}

	return "", &cinelink.FetchError{URL: url, Attempts: f.attempts, Err: lastErr}
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
