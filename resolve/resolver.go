package resolve

import (
	"context"

	"github.com/fwojciec/cinelink"
)

var _ cinelink.Resolver = (*Resolver)(nil)

// Resolver follows a content page or redirector URL through to its hosting
// page. Stages run strictly in sequence, each one fetching at most one page.
type Resolver struct {
	Fetcher   cinelink.Fetcher
	Extractor cinelink.EntryExtractor
	Redirects cinelink.RedirectExtractor
	HostPages cinelink.HostPageExtractor
	Listings  cinelink.SeasonExtractor
}

// Resolve runs the pipeline for inputURL. Content pages contribute their
// first download entry as the redirector to follow; any other URL is
// treated as a redirector itself. A hosting page that cannot be fetched
// yields a degraded success carrying only the stream link.
func (r *Resolver) Resolve(ctx context.Context, inputURL string) *cinelink.Outcome {
	working := cinelink.NormalizeLink(inputURL)

	if cinelink.IsContentPage(working) {
		entries, err := r.Entries(ctx, working)
		if err != nil {
			return cinelink.Failed(inputURL, cinelink.StageExtraction, err)
		}
		if len(entries) == 0 {
			return cinelink.Failed(inputURL, cinelink.StageExtraction,
				cinelink.Errorf(cinelink.ENOTFOUND, "no download entries found on page"))
		}
		working = entries[0].Link
	}

	target, err := r.ResolveRedirect(ctx, working)
	if err != nil {
		return cinelink.Failed(inputURL, cinelink.StageRedirect, err)
	}

	file, err := r.ResolveHostPage(ctx, target)
	if err != nil {
		return cinelink.Succeeded(inputURL, working, &cinelink.HostedFile{StreamURL: target}, true)
	}
	return cinelink.Succeeded(inputURL, working, file, false)
}

// Entries fetches a content page and runs the extraction chain over it.
// A page without entries yields an empty slice.
func (r *Resolver) Entries(ctx context.Context, pageURL string) ([]cinelink.DownloadEntry, error) {
	html, err := r.Fetcher.Fetch(ctx, cinelink.NormalizeLink(pageURL))
	if err != nil {
		return nil, err
	}
	return r.Extractor.ExtractEntries(html)
}

// Seasons fetches a TV show page and lists its seasons and episodes. A
// page without a season list yields no seasons.
func (r *Resolver) Seasons(ctx context.Context, showURL string) ([]cinelink.Season, error) {
	html, err := r.Fetcher.Fetch(ctx, cinelink.NormalizeLink(showURL))
	if err != nil {
		return nil, err
	}
	return r.Listings.ExtractSeasons(html)
}

// ResolveRedirect fetches a redirector page and returns the hosting page it
// points at. A page without a recognizable target is an ENOTFOUND error.
func (r *Resolver) ResolveRedirect(ctx context.Context, redirectURL string) (string, error) {
	html, err := r.Fetcher.Fetch(ctx, redirectURL)
	if err != nil {
		return "", err
	}
	target, ok, err := r.Redirects.ExtractRedirect(html)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", cinelink.Errorf(cinelink.ENOTFOUND, "redirect target not found")
	}
	return target, nil
}

// ResolveHostPage fetches a hosting page and scrapes its file metadata and
// mirrors.
func (r *Resolver) ResolveHostPage(ctx context.Context, pageURL string) (*cinelink.HostedFile, error) {
	html, err := r.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return r.HostPages.ExtractHostedFile(html, pageURL)
}
