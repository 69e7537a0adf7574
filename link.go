package cinelink

import (
	"net/url"
	"strings"
)

// Domains of the content site. Links on older pages still use the legacy
// domain; every extracted link is rewritten to the canonical one.
const (
	LegacyDomain    = "cinesubz.net"
	CanonicalDomain = "cinesubz.lk"
)

// BaseURL is the canonical site root.
const BaseURL = "https://" + CanonicalDomain

// NormalizeLink rewrites every occurrence of the legacy domain in link to
// the canonical domain. Normalizing a canonical link is a no-op.
func NormalizeLink(link string) string {
	return strings.ReplaceAll(link, LegacyDomain, CanonicalDomain)
}

// PageKind classifies a site URL by its path.
type PageKind string

// Page kinds recognized by ClassifyURL.
const (
	PageUnknown PageKind = ""
	PageMovie   PageKind = "movie"
	PageEpisode PageKind = "episode"
	PageTVShow  PageKind = "tvshow"
)

// ClassifyURL returns the kind of page rawURL points at based on its path
// segments. A kind segment must be followed by a slash, so the listing
// roots ("/movies", "/episodes") are not content pages. URLs that cannot be
// parsed are matched as plain strings.
func ClassifyURL(rawURL string) PageKind {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	switch {
	case strings.Contains(path, "/movies/"):
		return PageMovie
	case strings.Contains(path, "/episodes/"):
		return PageEpisode
	case strings.Contains(path, "/tvshows/"):
		return PageTVShow
	default:
		return PageUnknown
	}
}

// IsContentPage reports whether rawURL is a movie or episode page, the
// pages that list download entries.
func IsContentPage(rawURL string) bool {
	switch ClassifyURL(rawURL) {
	case PageMovie, PageEpisode:
		return true
	default:
		return false
	}
}
