package mock

import "github.com/fwojciec/cinelink"

var _ cinelink.EntryExtractor = (*EntryExtractor)(nil)

// EntryExtractor is a mock implementation of cinelink.EntryExtractor.
type EntryExtractor struct {
	ExtractEntriesFn func(html string) ([]cinelink.DownloadEntry, error)
}

func (e *EntryExtractor) ExtractEntries(html string) ([]cinelink.DownloadEntry, error) {
	return e.ExtractEntriesFn(html)
}

var _ cinelink.RedirectExtractor = (*RedirectExtractor)(nil)

// RedirectExtractor is a mock implementation of cinelink.RedirectExtractor.
type RedirectExtractor struct {
	ExtractRedirectFn func(html string) (string, bool, error)
}

func (e *RedirectExtractor) ExtractRedirect(html string) (string, bool, error) {
	return e.ExtractRedirectFn(html)
}

var _ cinelink.HostPageExtractor = (*HostPageExtractor)(nil)

// HostPageExtractor is a mock implementation of cinelink.HostPageExtractor.
type HostPageExtractor struct {
	ExtractHostedFileFn func(html string, pageURL string) (*cinelink.HostedFile, error)
}

func (e *HostPageExtractor) ExtractHostedFile(html string, pageURL string) (*cinelink.HostedFile, error) {
	return e.ExtractHostedFileFn(html, pageURL)
}

var _ cinelink.SeasonExtractor = (*SeasonExtractor)(nil)

// SeasonExtractor is a mock implementation of cinelink.SeasonExtractor.
type SeasonExtractor struct {
	ExtractSeasonsFn func(html string) ([]cinelink.Season, error)
}

func (e *SeasonExtractor) ExtractSeasons(html string) ([]cinelink.Season, error) {
	return e.ExtractSeasonsFn(html)
}
