package taskq

import (
	"context"
)

// ProcessFunc is the function executed by a pool worker for a task payload.
type ProcessFunc[T any] func(ctx context.Context, payload T) error

// Task represents a single unit of work submitted to a queue.
//
// Payload is handed to the pool's ProcessFunc. Priority orders tasks in
// priority queues (lower value runs earlier) and is ignored by FIFO queues.
// Ctx controls cancellation of retries during processing. CleanupFunc, if
// set, runs after processing on every path, including panic and failure.
//
// A Task is immutable once it has been put on a queue.
type Task[T any] struct {
	Payload     T
	Priority    int
	Ctx         context.Context
	CleanupFunc func()
	Retry       *RetryPolicy

	// seq is assigned by the queue at Put time and breaks ties between
	// tasks of equal priority, keeping ordering stable.
	seq uint64
}
