package taskq

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the worker pool to report
// queueing and execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncSubmitted increments the submitted tasks counter.
	IncSubmitted()

	// IncExecuted increments the successfully executed tasks counter.
	IncExecuted()

	// IncFailed increments the failed tasks counter. A task counts as
	// failed once its retries are exhausted or it panicked.
	IncFailed()

	// SetQueued records the current number of pending tasks.
	SetQueued(n int64)
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	submitted atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	executed atomic.Uint64

	_ [56]byte

	failed atomic.Uint64

	_ [56]byte

	queued atomic.Int64
}

// Submitted returns the total number of submitted tasks.
func (m *AtomicMetrics) Submitted() uint64 {
	return m.submitted.Load()
}

// Executed returns the total number of successfully executed tasks.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Failed returns the total number of failed tasks.
func (m *AtomicMetrics) Failed() uint64 {
	return m.failed.Load()
}

// Queued returns the last observed number of pending tasks.
func (m *AtomicMetrics) Queued() int64 {
	return m.queued.Load()
}

func (m *AtomicMetrics) IncSubmitted() {
	m.submitted.Add(1)
}

func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

func (m *AtomicMetrics) IncFailed() {
	m.failed.Add(1)
}

func (m *AtomicMetrics) SetQueued(n int64) {
	m.queued.Store(n)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncSubmitted()   {}
func (m *NoopMetrics) IncExecuted()    {}
func (m *NoopMetrics) IncFailed()      {}
func (m *NoopMetrics) SetQueued(int64) {}
