package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	limit   int
}

// New groups workers so that at most limit of them run at once. A
// non-positive limit means no bound.
func New(limit int, workers ...Worker) *Workers {
	return &Workers{workers: workers, limit: limit}
}

// Run starts every worker and waits for all of them. It returns the first
// error any worker reported.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	return g.Wait()
}
