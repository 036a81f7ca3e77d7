package scheduler

import (
	"context"
	"fmt"
	"sync"
)

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type workRequest struct {
	fn  Work[any]
	c   chan Result[any]
	ctx context.Context
}

type worker struct {
	done chan any
	wg   *sync.WaitGroup
}

func (w worker) Work(r workRequest) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result[any]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[any]{Data: v, Err: err}
}

// Scheduler runs submitted work on a fixed number of workers. With a single
// worker, work is executed strictly one item at a time in submission order.
type Scheduler struct {
	nbWorkers  int
	workers    *queue[worker]
	pending    *queue[workRequest]
	close      chan any
	stopped    chan any
	done       chan any
	work       chan workRequest
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
}

func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers < 1 {
		nbWorkers = 1
	}

	done := make(chan any, nbWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		nbWorkers:  nbWorkers,
		workers:    &queue[worker]{},
		pending:    &queue[workRequest]{},
		close:      make(chan any),
		stopped:    make(chan any),
		done:       done,
		work:       make(chan workRequest),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	for range nbWorkers {
		s.workers.Push(worker{done: done, wg: &s.wg})
	}
	go s.run()
	return s
}

func (s *Scheduler) Workers() int {
	return s.nbWorkers
}

// AddWork queues w and returns a future receiving exactly one result.
// After Close the future immediately yields context.Canceled.
func (s *Scheduler) AddWork(w Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	select {
	case <-s.mainCtx.Done():
		c <- Result[any]{Err: context.Canceled}
	case s.work <- workRequest{w, c, ctx}:
	}

	return NewFuture(c, cancel)
}

// Close cancels all work and waits for running workers to return. Work
// still waiting for a worker receives context.Canceled.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.stopped
	})
}

func (s *Scheduler) run() {
	defer close(s.stopped)
	for {
		select {
		case w := <-s.work:
			s.pending.Push(w)
			s.dispatch()
		case <-s.done:
			s.workers.Push(worker{done: s.done, wg: &s.wg})
			s.dispatch()
		case <-s.close:
			for s.pending.Len() > 0 {
				s.pending.Pop().c <- Result[any]{Err: context.Canceled}
			}
			s.wg.Wait()
			return
		}
	}
}

// dispatch pairs idle workers with pending work until one side runs out.
func (s *Scheduler) dispatch() {
	for s.workers.Len() > 0 && s.pending.Len() > 0 {
		r := s.pending.Pop()
		w := s.workers.Pop()
		s.wg.Add(1)
		go w.Work(r)
	}
}
