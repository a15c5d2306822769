package application

import (
	"context"

	"github.com/luca-patrignani/bridge/domain/deck"
	"golang.org/x/sync/errgroup"
)

// RunBatch runs one auction per deal, at most the configured number at a
// time. Results are returned in the order of deals. A failed auction is
// reported in its Result and does not stop the others; cancellation of ctx
// does, and its error is returned.
func (o Orchestrator) RunBatch(ctx context.Context, deals []deck.Deal) ([]Result, error) {
	results := make([]Result, len(deals))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, deal := range deals {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, _ := o.Run(gctx, deal)
			results[i] = res
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
