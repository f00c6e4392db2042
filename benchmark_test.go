package taskq_test

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	tq "github.com/azargarov/taskq"
)

var benchRetry = tq.RetryPolicy{Attempts: 1, Initial: time.Millisecond, Max: time.Millisecond}

// -----------------------------------------------------------------------------
// Queue benchmarks
// -----------------------------------------------------------------------------

func BenchmarkFIFOQueue_PutGet(b *testing.B) {
	q := tq.NewFIFO[int]()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = q.Put(tq.Task[int]{Payload: i})
		if _, ok := q.Get(); !ok {
			b.Fatal("get failed on non-empty queue")
		}
		q.TaskDone()
	}
}

func BenchmarkPriorityQueue_PutGet(b *testing.B) {
	q := tq.NewPriority[int]()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = q.Put(tq.Task[int]{Payload: i, Priority: i & 0xff})
		if _, ok := q.Get(); !ok {
			b.Fatal("get failed on non-empty queue")
		}
		q.TaskDone()
	}
}

func BenchmarkFIFOQueue_ContendedHandoff(b *testing.B) {
	q := tq.NewFIFO[int]()
	consumers := runtime.GOMAXPROCS(0)

	var wg sync.WaitGroup
	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if _, ok := q.Get(); !ok {
					return
				}
				q.TaskDone()
			}
		}()
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = q.Put(tq.Task[int]{Payload: i})
	}
	q.Join()

	b.StopTimer()
	q.Close()
	wg.Wait()
}

// -----------------------------------------------------------------------------
// Pool benchmarks
// -----------------------------------------------------------------------------

func BenchmarkPool_Throughput(b *testing.B) {
	q := tq.NewFIFO[int]()
	p, err := tq.New(q, func(context.Context, int) error { return nil },
		tq.Options{Workers: runtime.GOMAXPROCS(0), DefaultRetry: benchRetry})
	if err != nil {
		b.Fatalf("new pool: %v", err)
	}
	defer p.Stop()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := p.Submit(tq.Task[int]{Payload: i}); err != nil {
			b.Fatalf("submit: %v", err)
		}
	}
	q.Join()
}
