package taskq

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrQueueClosed is returned by Put when the queue no longer
	// accepts tasks.
	ErrQueueClosed = errors.New("taskq: queue is closed")

	// ErrNilProcessFunc is returned when a pool is created with a nil
	// ProcessFunc.
	ErrNilProcessFunc = errors.New("taskq: process func is nil")
)

// Queue is a thread-safe work queue with completion tracking.
//
// Producers Put tasks, consumers Get them, and every consumer must call
// TaskDone exactly once per retrieved task. Join blocks until the number
// of completed tasks equals the number of enqueued tasks.
//
// The ordering discipline (FIFO or priority) is chosen at construction;
// see NewFIFO and NewPriority.
type Queue[T any] interface {
	// Put appends a task and increments the unfinished counter.
	// It never blocks; the queue is unbounded. After Close it
	// returns ErrQueueClosed.
	Put(task Task[T]) error

	// Get removes and returns the next task according to the queue's
	// discipline. It blocks while the queue is empty and open. Once
	// the queue is closed and drained, Get returns a zero task and
	// false.
	Get() (Task[T], bool)

	// TaskDone records the completion of one previously retrieved
	// task. Callers must invoke it exactly once per Get, whether
	// processing succeeded or failed. Calling it more often than
	// tasks were enqueued panics.
	TaskDone()

	// Join blocks until every enqueued task has been completed via
	// TaskDone. It returns immediately if nothing is unfinished and
	// may be called any number of times.
	Join()

	// JoinContext is Join bounded by a context.
	JoinContext(ctx context.Context) error

	// Len reports the number of tasks currently pending.
	Len() int

	// Unfinished reports the number of enqueued but not yet
	// completed tasks, including tasks handed out by Get.
	Unfinished() int64

	// Close marks the queue as closed. Pending tasks remain
	// retrievable; once drained, Get returns false. Idempotent.
	Close()
}

// store holds pending tasks and defines their ordering.
// All calls happen under the owning WorkQueue's mutex.
type store[T any] interface {
	push(t Task[T])
	pop() (Task[T], bool)
	len() int
}

// WorkQueue is the monitor-pattern implementation of Queue.
//
// A mutex guards the pending store, the unfinished counter and the seq
// counter; notEmpty wakes consumers blocked in Get, allDone wakes
// callers blocked in Join.
type WorkQueue[T any] struct {
	mu       sync.Mutex
	notEmpty sync.Cond
	allDone  sync.Cond

	pending    store[T]
	unfinished int64
	seq        uint64
	closed     bool
}

// NewFIFO creates an unbounded queue that hands out tasks in strict
// enqueue order. Task priorities are ignored.
func NewFIFO[T any]() *WorkQueue[T] {
	return newWorkQueue[T](newFifoStore[T]())
}

// NewPriority creates an unbounded queue that hands out the pending
// task with the lowest priority value first. Tasks of equal priority
// keep their enqueue order.
func NewPriority[T any]() *WorkQueue[T] {
	return newWorkQueue[T](newPrioStore[T]())
}

func newWorkQueue[T any](s store[T]) *WorkQueue[T] {
	q := &WorkQueue[T]{pending: s}
	q.notEmpty.L = &q.mu
	q.allDone.L = &q.mu
	return q
}

func (q *WorkQueue[T]) Put(task Task[T]) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.seq++
	task.seq = q.seq
	q.pending.push(task)
	q.unfinished++
	q.notEmpty.Signal()
	return nil
}

func (q *WorkQueue[T]) Get() (Task[T], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.pending.len() == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	return q.pending.pop()
}

func (q *WorkQueue[T]) TaskDone() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.unfinished <= 0 {
		panic("taskq: TaskDone called more times than tasks were enqueued")
	}
	q.unfinished--
	if q.unfinished == 0 {
		q.allDone.Broadcast()
	}
}

func (q *WorkQueue[T]) Join() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.unfinished > 0 {
		q.allDone.Wait()
	}
}

func (q *WorkQueue[T]) JoinContext(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Join()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *WorkQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending.len()
}

func (q *WorkQueue[T]) Unfinished() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.unfinished
}

func (q *WorkQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.notEmpty.Broadcast()
}
