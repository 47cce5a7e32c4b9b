// Package workers runs independent units of work with bounded concurrency.
// It defines the Worker interface and a Workers aggregate that runs a set of
// workers and waits for all of them.
package workers

import "context"

// Worker is the interface that must be implemented by any unit of work.
//
// Run should return promptly once ctx is cancelled. A non-nil error cancels
// the context passed to the remaining workers of the same Workers.Run call.
//
// Example implementation:
//
//	type sqrtWorker struct{ num string }
//
//	func (w *sqrtWorker) Run(ctx context.Context) error {
//	    _, err := calculator.Calculate(ctx, models.OperationSqrt, w.num)
//	    return err
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to Worker.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
