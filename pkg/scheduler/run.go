package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
)

const (
	workQueued int32 = iota
	workStarted
	workAbandoned
)

// Run submits fn to s and waits for its result. If ctx ends while fn is
// still queued, fn never runs and ctx.Err() is returned. Once fn has
// started, Run waits for it and returns its result whatever happens to ctx.
func Run[T any](ctx context.Context, s *Scheduler, fn Work[T]) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	var state atomic.Int32
	future := s.AddWork(func(workCtx context.Context) (any, error) {
		if !state.CompareAndSwap(workQueued, workStarted) {
			return nil, context.Canceled
		}
		if err := workCtx.Err(); err != nil {
			return nil, err
		}
		return fn(workCtx)
	})
	defer future.Stop()

	var r Result[any]
	select {
	case r = <-future.C():
	case <-ctx.Done():
		if state.CompareAndSwap(workQueued, workAbandoned) {
			return zero, ctx.Err()
		}
		r = <-future.C()
	}

	if r.Err != nil {
		return zero, r.Err
	}
	if r.Data == nil {
		return zero, nil
	}
	data, ok := r.Data.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected work result type %T", r.Data)
	}
	return data, nil
}
