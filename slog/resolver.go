package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cinelink"
	"github.com/google/uuid"
)

// Ensure LoggingResolver implements cinelink.Resolver.
var _ cinelink.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging. Each call is tagged with a
// fresh request id so concurrent resolutions can be told apart.
type LoggingResolver struct {
	next   cinelink.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next cinelink.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, url string) (outcome *cinelink.Outcome) {
	id := uuid.NewString()
	defer func(begin time.Time) {
		attrs := []any{
			"request_id", id,
			"url", url,
			"duration", time.Since(begin),
		}
		switch {
		case outcome == nil:
		case outcome.OK():
			attrs = append(attrs, "status", "ok", "degraded", outcome.Degraded, "has_downloads", outcome.HasDownloads())
		case outcome.Failure != nil:
			attrs = append(attrs, "status", "failed", "stage", outcome.Failure.Stage, "reason", outcome.Failure.Reason)
		}
		r.logger.Info("resolve", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, url)
}

// Entries delegates to the wrapped resolver and logs the entry count.
func (r *LoggingResolver) Entries(ctx context.Context, url string) (entries []cinelink.DownloadEntry, err error) {
	defer func(begin time.Time) {
		r.logger.Info("entries",
			"request_id", uuid.NewString(),
			"url", url,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Entries(ctx, url)
}

// Seasons delegates to the wrapped resolver and logs season and episode
// counts.
func (r *LoggingResolver) Seasons(ctx context.Context, url string) (seasons []cinelink.Season, err error) {
	defer func(begin time.Time) {
		r.logger.Info("seasons",
			"request_id", uuid.NewString(),
			"url", url,
			"seasons", len(seasons),
			"episodes", len(cinelink.EpisodeURLs(seasons)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Seasons(ctx, url)
}
