package goquery

import (
	"strings"

	"github.com/fwojciec/cinelink"
)

var _ cinelink.HostPageExtractor = (*HostPageExtractor)(nil)

// mirrorRule maps lower-cased anchor text to a mirror kind.
type mirrorRule struct {
	kind  cinelink.MirrorKind
	match func(text string) bool
}

// mirrorRules are checked in order; the first rule matching an anchor's
// text decides its kind.
var mirrorRules = []mirrorRule{
	{cinelink.MirrorDirectCS, containsAll("direct download", "cs")},
	{cinelink.MirrorDirect1, containsAny("direct download 1", "direct 1")},
	{cinelink.MirrorGoogle1, containsAny("google download 1", "google 1")},
	{cinelink.MirrorGoogle2, containsAny("google download 2", "google 2")},
	{cinelink.MirrorTelegram, containsAny("telegram")},
}

// mirrorFallbacks fill kinds the text scan left empty from the first
// anchor matching a selector.
var mirrorFallbacks = []struct {
	kind     cinelink.MirrorKind
	selector string
}{
	{cinelink.MirrorDirectCS, `a.btn-cs, a[href*="cscloud"]`},
	{cinelink.MirrorGoogle1, `a[href*="drive.google"]`},
}

// HostPageExtractor reads file metadata and labeled mirrors from a
// hosting page.
type HostPageExtractor struct{}

// NewHostPageExtractor creates a new HostPageExtractor.
func NewHostPageExtractor() *HostPageExtractor {
	return &HostPageExtractor{}
}

// ExtractHostedFile scans every anchor once. Each mirror kind keeps the
// first anchor that matched it; later matches are ignored.
func (e *HostPageExtractor) ExtractHostedFile(html string, pageURL string) (*cinelink.HostedFile, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}

	text := doc.BodyText()
	fileName, _ := cinelink.ParseFileName(text)
	fileSize, _ := cinelink.ParseFileSize(text)

	file := &cinelink.HostedFile{
		FileName:  fileName,
		FileSize:  fileSize,
		StreamURL: pageURL,
		Mirrors:   make(map[cinelink.MirrorKind]string),
	}

	doc.FindAll("a", func(a Node) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		label := strings.ToLower(strings.Join(strings.Fields(a.Text()), " "))
		for _, rule := range mirrorRules {
			if !rule.match(label) {
				continue
			}
			if _, taken := file.Mirrors[rule.kind]; !taken {
				file.Mirrors[rule.kind] = cinelink.NormalizeLink(href)
			}
			return
		}
	})

	for _, fb := range mirrorFallbacks {
		if _, taken := file.Mirrors[fb.kind]; taken {
			continue
		}
		if href, ok := doc.FirstAttr(fb.selector, "href"); ok {
			file.Mirrors[fb.kind] = cinelink.NormalizeLink(href)
		}
	}

	return file, nil
}

func containsAll(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if !strings.Contains(s, sub) {
				return false
			}
		}
		return true
	}
}

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}
