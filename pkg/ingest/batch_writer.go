package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrBatchWriterClosed is returned by Submit after Close.
var ErrBatchWriterClosed = errors.New("batch writer closed")

// WriteFunc performs database writes inside the batch's transaction.
type WriteFunc func(ctx context.Context, tx *sql.Tx) error

// BatchWriter buffers write callbacks and commits them in batches,
// each batch inside one transaction. A batch is flushed when the
// buffer fills or, if a flush interval is configured, when the ticker
// fires. Errors surface asynchronously through OnError and through the
// return value of Close.
type BatchWriter struct {
	db *sql.DB

	mu     sync.Mutex
	buf    []WriteFunc
	cap    int
	closed bool

	batches chan []WriteFunc
	ticker  *time.Ticker
	done    chan struct{}
	wg      sync.WaitGroup

	// OnError is invoked for each failed batch. nil means errors are
	// only reported by Close.
	OnError func(error)

	errMu    sync.Mutex
	firstErr error
}

// NewBatchWriter creates a writer committing to db in batches of
// bufferSize, additionally flushing every flushInterval (0 disables
// the timer). A nil db runs callbacks with a nil transaction, which
// tests use to observe batching without a database.
func NewBatchWriter(db *sql.DB, bufferSize int, flushInterval time.Duration) *BatchWriter {
	if bufferSize <= 0 {
		bufferSize = 10
	}
	bw := &BatchWriter{
		db:      db,
		buf:     make([]WriteFunc, 0, bufferSize),
		cap:     bufferSize,
		batches: make(chan []WriteFunc, 2),
		done:    make(chan struct{}),
	}

	bw.wg.Add(1)
	go bw.commitLoop()

	if flushInterval > 0 {
		bw.ticker = time.NewTicker(flushInterval)
		bw.wg.Add(1)
		go bw.tickLoop()
	}
	return bw
}

// Submit enqueues one write callback.
func (bw *BatchWriter) Submit(w WriteFunc) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.closed {
		return ErrBatchWriterClosed
	}
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.cap {
		bw.flushLocked()
	}
	return nil
}

// flushLocked hands the buffered batch to the committer. Caller holds
// bw.mu; blocking here propagates backpressure to Submit.
func (bw *BatchWriter) flushLocked() {
	if len(bw.buf) == 0 {
		return
	}
	batch := bw.buf
	bw.buf = make([]WriteFunc, 0, bw.cap)
	bw.batches <- batch
}

func (bw *BatchWriter) commitLoop() {
	defer bw.wg.Done()
	for batch := range bw.batches {
		if err := bw.commit(batch); err != nil {
			bw.recordErr(err)
		}
	}
}

func (bw *BatchWriter) commit(batch []WriteFunc) error {
	// flushing uses its own context so pending batches still commit
	// while the writer is closing
	ctx := context.Background()

	if bw.db == nil {
		for _, w := range batch {
			if err := w(ctx, nil); err != nil {
				return err
			}
		}
		return nil
	}

	tx, err := bw.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op once committed
	}()

	for _, w := range batch {
		if err := w(ctx, tx); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch of %d: %w", len(batch), err)
	}
	return nil
}

func (bw *BatchWriter) tickLoop() {
	defer bw.wg.Done()
	for {
		select {
		case <-bw.done:
			return
		case <-bw.ticker.C:
			bw.mu.Lock()
			bw.flushLocked()
			bw.mu.Unlock()
		}
	}
}

func (bw *BatchWriter) recordErr(err error) {
	bw.errMu.Lock()
	if bw.firstErr == nil {
		bw.firstErr = err
	}
	bw.errMu.Unlock()
	if bw.OnError != nil {
		bw.OnError(err)
	}
}

// Close flushes the remaining buffer, waits for all pending batches to
// commit, and returns the first error seen over the writer's lifetime.
func (bw *BatchWriter) Close() error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return ErrBatchWriterClosed
	}
	bw.closed = true
	if bw.ticker != nil {
		bw.ticker.Stop()
	}
	bw.flushLocked()
	bw.mu.Unlock()

	close(bw.done)
	close(bw.batches)
	bw.wg.Wait()

	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.firstErr
}
