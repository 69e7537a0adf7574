package cinelink

// MirrorKind identifies one labeled mirror on a hosting page.
type MirrorKind string

// Mirror kinds exposed by hosting pages.
const (
	MirrorDirectCS MirrorKind = "directCS"
	MirrorDirect1  MirrorKind = "direct1"
	MirrorGoogle1  MirrorKind = "google1"
	MirrorGoogle2  MirrorKind = "google2"
	MirrorTelegram MirrorKind = "telegram"
)

// MirrorKinds lists every mirror kind in display order.
var MirrorKinds = []MirrorKind{
	MirrorDirectCS,
	MirrorDirect1,
	MirrorGoogle1,
	MirrorGoogle2,
	MirrorTelegram,
}

// HostedFile holds what a hosting page exposes about a single file.
// StreamURL is always the hosting page URL itself. Mirrors only contains
// kinds that were found on the page.
type HostedFile struct {
	FileName  string
	FileSize  string
	StreamURL string
	Mirrors   map[MirrorKind]string
}

// Mirror returns the URL for the given mirror kind, if present.
func (f *HostedFile) Mirror(kind MirrorKind) (string, bool) {
	if f == nil {
		return "", false
	}
	u, ok := f.Mirrors[kind]
	if !ok || u == "" {
		return "", false
	}
	return u, true
}

// HasDownloads reports whether any usable link is present: the CS direct
// mirror, the first Google mirror or the stream URL.
func (f *HostedFile) HasDownloads() bool {
	if f == nil {
		return false
	}
	_, cs := f.Mirror(MirrorDirectCS)
	_, google := f.Mirror(MirrorGoogle1)
	return cs || google || f.StreamURL != ""
}
