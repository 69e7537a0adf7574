package goquery

import "github.com/fwojciec/cinelink"

// Strategy enumerates download entries from a parsed content page.
// Implementations never fail: rows or blocks they cannot read are skipped
// or filled with defaults.
type Strategy interface {
	Extract(doc *Document) []cinelink.DownloadEntry

	// Name returns the strategy's identifier (e.g., "table", "script").
	Name() string
}

// DefaultStrategies returns the built-in strategies from most to least
// structurally explicit.
func DefaultStrategies() []Strategy {
	return []Strategy{
		NewTableStrategy(),
		NewScriptStrategy(),
		NewAnchorStrategy(),
	}
}

// FirstNonEmpty runs strategies in order and returns the entries of the
// first one that yields any, along with its name. Later strategies are not
// run. It returns nil and "" if no strategy yields entries.
func FirstNonEmpty(doc *Document, strategies ...Strategy) ([]cinelink.DownloadEntry, string) {
	for _, s := range strategies {
		if entries := s.Extract(doc); len(entries) > 0 {
			return entries, s.Name()
		}
	}
	return nil, ""
}

var _ cinelink.EntryExtractor = (*EntryExtractor)(nil)

// EntryExtractor extracts download entries with an ordered strategy chain.
type EntryExtractor struct {
	strategies []Strategy
}

// NewEntryExtractor creates an EntryExtractor running strategies in the
// given order. With no strategies it uses DefaultStrategies.
func NewEntryExtractor(strategies ...Strategy) *EntryExtractor {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &EntryExtractor{strategies: strategies}
}

// ExtractEntries parses HTML and returns the entries of the first
// strategy that finds any.
func (e *EntryExtractor) ExtractEntries(html string) ([]cinelink.DownloadEntry, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}
	entries, _ := FirstNonEmpty(doc, e.strategies...)
	return entries, nil
}
