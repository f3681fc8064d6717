// Package workers runs the background jobs of the dental-site server.
// It defines the Worker interface and a Workers aggregate that starts
// every job and waits for all of them to stop.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// PendingForwarder resends bookings the webhook has not acknowledged yet.
// service.BookingService satisfies it.
type PendingForwarder interface {
	ForwardPending(ctx context.Context, limit int) (int, error)
}
