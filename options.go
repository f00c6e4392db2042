package taskq

import (
	"runtime"
)

// Options configure a worker Pool.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Workers is the number of worker goroutines.
	// Defaults to runtime.GOMAXPROCS(0).
	Workers int

	// DefaultRetry applies to tasks that carry no RetryPolicy of
	// their own.
	DefaultRetry RetryPolicy

	// Metrics receives queueing and execution counters.
	// Defaults to NoopMetrics.
	Metrics MetricsPolicy

	// OnTaskError is called with the final error of a task that
	// exhausted its retries or panicked. If nil, failures are only
	// logged.
	OnTaskError func(error)
}

func (o *Options) FillDefaults() {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	o.DefaultRetry.fillDefaults()
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
