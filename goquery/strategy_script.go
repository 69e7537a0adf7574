package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/cinelink"
)

// Markers of the download table some pages embed as a script literal.
// Keys may be bare or quoted; only the first link of each array is used.
// Size and resolution keys match as suffixes too ("file_size").
var (
	scriptLinkRe       = regexp.MustCompile(`\bdlLink"?\s*:\s*\[\s*"([^"]+)"`)
	scriptSizeRe       = regexp.MustCompile(`size"?\s*:\s*"([^"]*)"`)
	scriptResolutionRe = regexp.MustCompile(`resolution"?\s*:\s*"([^"]*)"`)
)

// ScriptStrategy reads download entries from inline scripts that embed
// the download table as repeated dlLink/size/resolution literals.
// The i-th link is paired with the i-th size and resolution.
type ScriptStrategy struct{}

// NewScriptStrategy creates a new ScriptStrategy.
func NewScriptStrategy() *ScriptStrategy {
	return &ScriptStrategy{}
}

// Name returns the strategy's identifier.
func (s *ScriptStrategy) Name() string {
	return "script"
}

// Extract scans every script block containing a dlLink marker.
func (s *ScriptStrategy) Extract(doc *Document) []cinelink.DownloadEntry {
	var entries []cinelink.DownloadEntry

	doc.FindAll("script", func(n Node) {
		body := n.RawText()
		if !strings.Contains(body, "dlLink") {
			return
		}
		entries = append(entries, extractScriptEntries(body)...)
	})

	return entries
}

// extractScriptEntries correlates the markers of one script block by
// position. Missing sizes are empty and missing resolutions "Unknown".
func extractScriptEntries(body string) []cinelink.DownloadEntry {
	links := submatches(scriptLinkRe, body)
	sizes := submatches(scriptSizeRe, body)
	resolutions := submatches(scriptResolutionRe, body)

	entries := make([]cinelink.DownloadEntry, 0, len(links))
	for i, link := range links {
		quality := at(resolutions, i)
		if quality == "" {
			quality = cinelink.QualityUnknown
		}
		entries = append(entries, cinelink.DownloadEntry{
			Quality: quality,
			Size:    at(sizes, i),
			Link:    cinelink.NormalizeLink(unescapeSlashes(link)),
		})
	}
	return entries
}

func submatches(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

func at(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}

// unescapeSlashes undoes JSON-style "\/" escaping.
func unescapeSlashes(s string) string {
	return strings.ReplaceAll(s, `\/`, `/`)
}
