// Package http provides an HTTP-based implementation of cinelink.Fetcher
// that presents itself like a desktop browser.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/cinelink"
	"golang.org/x/net/html/charset"
)

// Defaults for a single fetch.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxRedirects = 5
	DefaultMaxBodySize  = 10 << 20
)

// DefaultUserAgent is a desktop Chrome user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultHeaders returns the browser-like headers sent with every request.
// Accept-Encoding is left to the transport so responses are decompressed
// transparently.
func DefaultHeaders() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", DefaultUserAgent)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	h.Set("Accept-Language", "en-US,en;q=0.5")
	return h
}

// Ensure Fetcher implements cinelink.Fetcher at compile time.
var _ cinelink.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// A single Fetch makes one logical request, following up to maxRedirects
// redirects. Retries are left to the caller.
type Fetcher struct {
	client       *http.Client
	transport    http.RoundTripper
	timeout      time.Duration
	maxRedirects int
	headers      http.Header
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests, redirects included.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxRedirects sets how many redirects a single fetch follows.
// Defaults to DefaultMaxRedirects (5) if not specified.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// WithHeader sets a request header, replacing any default value.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		f.headers.Set(key, value)
	}
}

// WithUserAgent overrides the default browser user agent.
func WithUserAgent(ua string) Option {
	return WithHeader("User-Agent", ua)
}

// WithTransport sets the round tripper used for requests.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithBrowserTLS makes requests with a Chrome TLS fingerprint.
func WithBrowserTLS() Option {
	return WithTransport(NewBrowserTransport())
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		maxRedirects: DefaultMaxRedirects,
		headers:      DefaultHeaders(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: f.transport,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) > f.maxRedirects {
				return fmt.Errorf("stopped after %d redirects", f.maxRedirects)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. The body is decoded
// to UTF-8 according to the response's declared charset. Bodies larger than
// DefaultMaxBodySize are an error rather than being truncated.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	for k, v := range f.headers {
		req.Header[k] = v
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var body io.Reader = resp.Body
	if r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type")); err == nil {
		body = r
	}

	data, err := io.ReadAll(io.LimitReader(body, DefaultMaxBodySize+1))
	if err != nil {
		return "", err
	}
	if len(data) > DefaultMaxBodySize {
		return "", fmt.Errorf("response body exceeds %d bytes for %s", DefaultMaxBodySize, url)
	}

	return string(data), nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
