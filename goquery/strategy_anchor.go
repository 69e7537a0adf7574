package goquery

import "github.com/fwojciec/cinelink"

// AnchorStrategy treats any anchor pointing at a redirector API path as a
// download entry. It is the most permissive strategy and runs last.
type AnchorStrategy struct{}

// NewAnchorStrategy creates a new AnchorStrategy.
func NewAnchorStrategy() *AnchorStrategy {
	return &AnchorStrategy{}
}

// Name returns the strategy's identifier.
func (s *AnchorStrategy) Name() string {
	return "anchor"
}

// Extract returns one entry per distinct redirector link. Quality and size
// are read from tokens in the anchor text; without a resolution token the
// whole text is used as quality.
func (s *AnchorStrategy) Extract(doc *Document) []cinelink.DownloadEntry {
	var entries []cinelink.DownloadEntry
	seen := make(map[string]bool)

	doc.FindAll(`a[href*="/api/"], a[href*="api/?id="]`, func(a Node) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		link := cinelink.NormalizeLink(href)
		if seen[link] {
			return
		}
		seen[link] = true

		text := a.Text()
		quality, ok := cinelink.ParseResolution(text)
		if !ok {
			quality = text
		}
		if quality == "" {
			quality = cinelink.QualityDownload
		}
		size, _ := cinelink.ParseSize(text)

		entries = append(entries, cinelink.DownloadEntry{
			Quality: quality,
			Size:    size,
			Link:    link,
		})
	})

	return entries
}
