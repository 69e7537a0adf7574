package cinelink

// EntryExtractor enumerates the download entries listed on a content page.
type EntryExtractor interface {
	// ExtractEntries parses HTML and returns its download entries.
	// A page without entries yields an empty slice and no error; an error
	// is returned only if the markup cannot be parsed at all.
	ExtractEntries(html string) ([]DownloadEntry, error)
}

// RedirectExtractor finds the hosting page an intermediate page points at.
type RedirectExtractor interface {
	// ExtractRedirect returns the redirect target of the page.
	// ok is false if the page carries no recognizable redirect.
	ExtractRedirect(html string) (target string, ok bool, err error)
}

// HostPageExtractor scrapes a hosting page for file metadata and mirrors.
type HostPageExtractor interface {
	// ExtractHostedFile returns what the hosting page at pageURL exposes.
	// StreamURL of the result is always pageURL. Missing metadata or
	// mirrors are not errors.
	ExtractHostedFile(html string, pageURL string) (*HostedFile, error)
}

// SeasonExtractor lists the seasons and episodes of a TV show page.
type SeasonExtractor interface {
	// ExtractSeasons returns the seasons in page order. Seasons without a
	// number and episodes without a link are skipped.
	ExtractSeasons(html string) ([]Season, error)
}
