package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	p := NewPool(4, 8)
	p.Start(context.Background())

	var ran atomic.Int64
	for i := 0; i < 50; i++ {
		if err := p.Submit(func(ctx context.Context) error {
			ran.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	p.Close()

	if got := ran.Load(); got != 50 {
		t.Fatalf("expected 50 tasks run, got %d", got)
	}
}

func TestPoolSubmitAfterClose(t *testing.T) {
	p := NewPool(1, 1)
	p.Start(context.Background())
	p.Close()

	err := p.Submit(func(ctx context.Context) error { return nil })
	if !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestPoolCloseTwice(t *testing.T) {
	p := NewPool(2, 2)
	p.Start(context.Background())
	p.Close()
	p.Close() // must not panic or hang
}

func TestPoolSubmitCtxCanceled(t *testing.T) {
	// workers never started and the queue is full, so SubmitCtx can
	// only exit through the context
	p := NewPool(1, 1)
	if err := p.Submit(func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.SubmitCtx(ctx, func(ctx context.Context) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPoolStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPool(1, 1)
	p.Start(ctx)

	started := make(chan struct{})
	if err := p.Submit(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	<-started
	cancel()

	done := make(chan struct{})
	go func() {
		p.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after context cancel")
	}
}
