package resolve

import (
	"context"

	"github.com/fwojciec/cinelink"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs resolved at once by ResolveAll.
const DefaultConcurrency = 4

// ProgressFunc is called after each URL of a batch has been resolved.
// Calls are serialized.
type ProgressFunc func(completed, total int, outcome *cinelink.Outcome)

// ResolveAll resolves every URL with at most concurrency pipelines running
// at once. Outcomes are returned in input order. Pipelines share nothing but
// the resolver's collaborators.
func ResolveAll(ctx context.Context, r cinelink.Resolver, urls []string, concurrency int, progress ProgressFunc) []*cinelink.Outcome {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type result struct {
		position int
		outcome  *cinelink.Outcome
	}
	resultCh := make(chan result, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- result{position: i, outcome: r.Resolve(gctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	outcomes := make([]*cinelink.Outcome, len(urls))
	var completed int
	for res := range resultCh {
		completed++
		outcomes[res.position] = res.outcome
		if progress != nil {
			progress(completed, len(urls), res.outcome)
		}
	}
	return outcomes
}
