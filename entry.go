package cinelink

// Placeholder labels used when a quality token cannot be read.
const (
	QualityDownload = "Download"
	QualityUnknown  = "Unknown"
)

// DownloadEntry is one downloadable variant listed on a content page.
// Link always points at an intermediate redirector page and is already
// normalized to the canonical domain. Size and Language are empty strings
// when the page does not provide them.
type DownloadEntry struct {
	Quality  string `json:"quality"`
	Size     string `json:"size"`
	Language string `json:"language"`
	Link     string `json:"link"`
}
