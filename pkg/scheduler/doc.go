// Package scheduler implements a worker pool for executing work with futures.
//
// The book service submits every operation to a Scheduler so that the number
// of operations in flight is bounded by the configured worker count.
//
//	sched := scheduler.NewScheduler(4)
//	defer sched.Close()
//
//	count, err := scheduler.Run(ctx, sched, func(ctx context.Context) (int, error) {
//	    return store.Books().Count(ctx)
//	})
//
// Run gives up on work only while it is queued. Work that has started is
// always awaited, even after ctx ends, so its outcome is never lost.
//
// AddWork returns a Future whose channel receives exactly one Result. Stop
// cancels the context handed to the work function. Close cancels every
// pending work item and waits for running ones to return; AddWork after
// Close yields context.Canceled. Panics inside work are recovered and
// reported as errors.
package scheduler
