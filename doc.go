// Package taskq provides a blocking work queue with completion
// tracking and a fixed-size worker pool consuming it.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - Exact ordering guarantees: strict FIFO, or strict priority order
//     with stable ties
//   - Blocking handoff: consumers suspend on an empty queue instead of
//     polling or erroring
//   - Completion tracking: producers can wait, via Join, until every
//     enqueued task has been processed
//   - Guaranteed release: a failing or panicking task can never leave
//     the completion counter nonzero
//
// Architecture overview
//
// The package is composed of three loosely coupled layers:
//
//   1. Ordering (store)
//      A queue owns a pending-task store that defines which task is
//      handed out next. Two stores exist: a circular-buffer FIFO and
//      a binary min-heap keyed by task priority with insertion order
//      breaking ties.
//
//   2. Synchronization (WorkQueue)
//      A classic monitor: one mutex, a not-empty condition for
//      consumers blocked in Get, and an all-done condition for
//      callers blocked in Join. The unfinished counter is incremented
//      once per Put and decremented once per TaskDone.
//
//   3. Execution (Pool / workers)
//      A fixed set of workers loops Get -> process -> TaskDone.
//      Task errors are retried with exponential backoff, then
//      reported; panics are recovered. Neither stops the worker.
//
// Queue lifecycle
//
// Queues are unbounded and never reject a Put while open. Close marks
// the queue closed: pending tasks remain retrievable, and once the
// queue drains, Get returns false and workers exit. This is the only
// termination path; without Close, workers behave as daemons for the
// process lifetime.
//
// Error handling
//
// The pool distinguishes between two classes of failures:
//
//   - Task errors: returned by the process function or produced by
//     panic recovery
//   - Misuse: calling TaskDone more often than tasks were enqueued,
//     which panics
//
// Task errors are reported via an optional handler and do not stop
// worker execution. TaskDone is invoked by the worker on every path
// after Get, so Join always unblocks once the queue drains.
//
// Intended use cases
//
// taskq is well suited for:
//
//   - Fan-out of blocking I/O work (downloads, uploads, RPCs)
//   - Drain-then-exit batch programs that need Join semantics
//   - Priority scheduling with exact, reproducible ordering
//
// It deliberately trades raw throughput for strict semantics; for
// high-frequency short-lived jobs a lock-free or batched design is a
// better fit.
package taskq
