package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/cinelink"
)

// Ensure LoggingEntryExtractor implements cinelink.EntryExtractor.
var _ cinelink.EntryExtractor = (*LoggingEntryExtractor)(nil)

// LoggingEntryExtractor wraps an EntryExtractor with debug logging.
type LoggingEntryExtractor struct {
	next   cinelink.EntryExtractor
	logger *slog.Logger
}

// NewLoggingEntryExtractor creates a new LoggingEntryExtractor.
func NewLoggingEntryExtractor(next cinelink.EntryExtractor, logger *slog.Logger) *LoggingEntryExtractor {
	return &LoggingEntryExtractor{next: next, logger: logger}
}

// ExtractEntries delegates to the wrapped extractor and logs the count.
func (e *LoggingEntryExtractor) ExtractEntries(html string) (entries []cinelink.DownloadEntry, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("entry extraction",
			"bytes", len(html),
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractEntries(html)
}
