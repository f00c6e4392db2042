package taskq

import (
	"time"
)

const (
	defaultAttempts     = 3
	defaultInitialRetry = 200 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second
)

// RetryPolicy describes how many times and how often a task should be
// retried. Zero values are treated as "use pool defaults".
type RetryPolicy struct {
	// Attempts is the maximum number of tries for a task.
	Attempts int

	// Initial is the first backoff duration.
	Initial time.Duration

	// Max is the cap for backoff duration.
	Max time.Duration
}

// DefaultRetryPolicy returns the retry policy used by a pool when
// neither Options nor the task override it. Useful in tests or when
// constructing a pool with the same defaults.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: defaultAttempts,
		Initial:  defaultInitialRetry,
		Max:      defaultMaxRetry,
	}
}

func (rp *RetryPolicy) fillDefaults() {
	if rp.Attempts <= 0 {
		rp.Attempts = defaultAttempts
	}
	if rp.Initial <= 0 {
		rp.Initial = defaultInitialRetry
	}
	if rp.Max <= 0 {
		rp.Max = defaultMaxRetry
	}
}

// merge overlays non-zero per-task values on top of the pool policy.
func (rp RetryPolicy) merge(override *RetryPolicy) RetryPolicy {
	if override == nil {
		return rp
	}
	if override.Attempts > 0 {
		rp.Attempts = override.Attempts
	}
	if override.Initial > 0 {
		rp.Initial = override.Initial
	}
	if override.Max > 0 {
		rp.Max = override.Max
	}
	return rp
}
