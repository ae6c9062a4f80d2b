// Package pipeline provides the bounded worker pool used to overlap
// analyzer invocations, the only blocking calls in the vocabulary
// pipeline.
package pipeline

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned by Submit after Close.
var ErrPoolClosed = errors.New("worker pool closed")

// Task is one unit of work run by the pool. Task errors are the
// task's own business: the pool runs tasks, it does not collect
// results.
type Task func(ctx context.Context) error

// Pool runs tasks on a fixed number of goroutines with a bounded
// queue. Close drains the queue: every task accepted by Submit runs
// before Close returns, unless the start context is canceled first.
type Pool struct {
	tasks   chan Task
	workers int

	mu         sync.Mutex
	closed     bool
	submitters sync.WaitGroup

	wg sync.WaitGroup
}

// NewPool creates a pool of the given size. Non-positive arguments
// fall back to one worker and a queue of twice the worker count.
func NewPool(workers, queue int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &Pool{
		tasks:   make(chan Task, queue),
		workers: workers,
	}
}

// Start launches the worker goroutines. Workers exit when ctx is done
// or the task channel is closed by Close.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-p.tasks:
					if !ok {
						return
					}
					_ = task(ctx)
				}
			}
		}()
	}
}

// Submit enqueues a task, blocking while the queue is full. It returns
// ErrPoolClosed once Close has been called.
func (p *Pool) Submit(task Task) error {
	return p.SubmitCtx(context.Background(), task)
}

// SubmitCtx is Submit but returns promptly with ctx.Err() if ctx is
// canceled while waiting for queue space.
func (p *Pool) SubmitCtx(ctx context.Context, task Task) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.submitters.Add(1)
	p.mu.Unlock()
	defer p.submitters.Done()

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks, waits for queued tasks to run, and
// waits for the workers to exit. Safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.wg.Wait()
		return
	}
	p.closed = true
	p.mu.Unlock()

	// in-flight Submit calls hold a reference to the open channel;
	// wait for them before closing it
	p.submitters.Wait()
	close(p.tasks)
	p.wg.Wait()
}
