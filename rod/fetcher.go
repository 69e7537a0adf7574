// Package rod provides a headless Chrome implementation of cinelink.Fetcher
// for pages that only produce their links after scripts run.
package rod

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/fwojciec/cinelink"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements cinelink.Fetcher at compile time.
var _ cinelink.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using a headless browser.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	pool      *browserPool
	timeout   time.Duration
	userAgent string
	maxPages  int
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for a single page load.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's user agent for every page.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxPages sets how many pages the browser renders before it is
// relaunched. Zero disables relaunching.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher launches a headless browser. Close must be called when the
// Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	pool, err := newBrowserPool(f.maxPages)
	if err != nil {
		return nil, err
	}
	f.pool = pool
	return f, nil
}

// Fetch navigates to url, waits for the load event and returns the
// rendered document. A main document answered with a status other than
// 200 is an error, as in the HTTP fetcher.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", cinelink.Errorf(cinelink.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.pool.acquire().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}

	// The main frame shares the target id, so its document response is the
	// one carrying the page status.
	status := 0
	waitResponse := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument || e.FrameID != page.FrameID {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	waitResponse()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if status != 0 && status != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", status, url)
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.pool.pid()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.pool.close()
}
