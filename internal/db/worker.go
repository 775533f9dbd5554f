package db

import (
	"context"
	"errors"
	"sync"

	"github.com/jmoiron/sqlx"
)

// ErrWorkerClosed is returned by Do after Close has been called.
var ErrWorkerClosed = errors.New("db worker closed")

// TxFn runs inside a write transaction. Returning an error rolls it back.
type TxFn func(ctx context.Context, tx *sqlx.Tx) error

type job struct {
	ctx context.Context
	fn  TxFn
	ch  chan error
}

// Worker serializes write transactions onto a single goroutine so that every
// write is one atomic statement group and SQLite never sees two writers from
// this process.
type Worker struct {
	db     *sqlx.DB
	jobs   chan job
	done   chan struct{}
	closed chan struct{}
	once   sync.Once
}

func NewWorker(db *sqlx.DB) *Worker {
	w := &Worker{
		db:     db,
		jobs:   make(chan job, 256),
		done:   make(chan struct{}),
		closed: make(chan struct{}),
	}
	go w.loop()
	return w
}

// Close stops accepting jobs and waits for queued ones to finish.
// It is safe to call more than once.
func (w *Worker) Close() {
	w.once.Do(func() {
		close(w.closed)
		close(w.jobs)
	})
	<-w.done
}

func (w *Worker) Do(ctx context.Context, fn TxFn) (err error) {
	select {
	case <-w.closed:
		return ErrWorkerClosed
	default:
	}

	// A Close racing with this send closes jobs underneath us.
	defer func() {
		if recover() != nil {
			err = ErrWorkerClosed
		}
	}()

	ch := make(chan error, 1)
	j := job{ctx: ctx, fn: fn, ch: ch}

	// Enqueue; bail out if the caller's context expires while the buffer is full.
	select {
	case w.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	}

	// A job whose caller gave up still reaches the loop, but under the
	// caller's ctx: BeginTxx fails, or database/sql rolls the tx back once
	// ctx is done. The result lands in the buffered ch and is discarded.
	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) loop() {
	defer close(w.done)

	for j := range w.jobs {
		tx, err := w.db.BeginTxx(j.ctx, nil)
		if err != nil {
			j.ch <- err
			continue
		}

		if err := j.fn(j.ctx, tx); err != nil {
			_ = tx.Rollback()
			j.ch <- err
			continue
		}

		j.ch <- tx.Commit()
	}
}
