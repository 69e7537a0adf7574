package goquery

import "github.com/fwojciec/cinelink"

// TableStrategy reads download rows that carry their redirector URL in a
// data-href attribute. Cells are read in fixed order: quality, size,
// language.
type TableStrategy struct{}

// NewTableStrategy creates a new TableStrategy.
func NewTableStrategy() *TableStrategy {
	return &TableStrategy{}
}

// Name returns the strategy's identifier.
func (s *TableStrategy) Name() string {
	return "table"
}

// Extract returns one entry per row with a data-href attribute.
// Rows without one are skipped.
func (s *TableStrategy) Extract(doc *Document) []cinelink.DownloadEntry {
	var entries []cinelink.DownloadEntry

	doc.FindAll("tr.clidckable-rowdd, tr[data-href]", func(row Node) {
		link, ok := row.Attr("data-href")
		if !ok {
			return
		}

		quality := row.CellText(1)
		if quality == "" {
			quality = cinelink.QualityDownload
		}

		entries = append(entries, cinelink.DownloadEntry{
			Quality:  quality,
			Size:     row.CellText(2),
			Language: row.CellText(3),
			Link:     cinelink.NormalizeLink(link),
		})
	})

	return entries
}
