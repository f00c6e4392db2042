package taskq

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// Pool runs a fixed set of workers against one Queue.
//
// Workers are spawned in New and loop Get -> process -> TaskDone until
// the queue is closed and drained. TaskDone is guaranteed on every
// path, so a failing or panicking task can never leave Join hanging.
type Pool[T any] struct {
	queue         Queue[T]
	fn            ProcessFunc[T]
	wg            sync.WaitGroup
	workers       int
	activeWorkers atomic.Int32
	stopOnce      sync.Once
	defaultRetry  RetryPolicy
	metrics       MetricsPolicy
	onTaskError   func(error)
}

// New creates a pool of opts.Workers workers consuming q. Every
// retrieved task is handed to fn; fn errors are retried per the task's
// (or the pool's default) retry policy and reported, never fatal to
// the worker loop.
//
// Workers start immediately.
func New[T any](q Queue[T], fn ProcessFunc[T], opts Options) (*Pool[T], error) {
	if fn == nil {
		return nil, ErrNilProcessFunc
	}
	opts.FillDefaults()

	p := &Pool[T]{
		queue:        q,
		fn:           fn,
		workers:      opts.Workers,
		defaultRetry: opts.DefaultRetry,
		metrics:      opts.Metrics,
		onTaskError:  opts.OnTaskError,
	}
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p, nil
}

// Submit puts a task on the pool's queue.
func (p *Pool[T]) Submit(task Task[T]) error {
	if err := p.queue.Put(task); err != nil {
		return err
	}
	p.metrics.IncSubmitted()
	p.metrics.SetQueued(int64(p.queue.Len()))
	return nil
}

// Shutdown closes the queue and waits for the workers to drain it,
// bounded by ctx. Tasks already enqueued are still processed.
func (p *Pool[T]) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.queue.Close()
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop is Shutdown without a deadline.
func (p *Pool[T]) Stop() { _ = p.Shutdown(context.Background()) }

func (p *Pool[T]) worker(id int) {
	defer p.wg.Done()
	for {
		task, ok := p.queue.Get()
		if !ok {
			return
		}
		p.metrics.SetQueued(int64(p.queue.Len()))
		p.runTask(id, task)
	}
}

// runTask executes one task. TaskDone and CleanupFunc run on every
// path, panic included.
func (p *Pool[T]) runTask(id int, task Task[T]) {
	ctx := task.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	defer p.queue.TaskDone()
	defer func() {
		if r := recover(); r != nil {
			lg.FromContext(ctx).Error("task panicked",
				lg.Int("worker", id),
				lg.Any("panic", r),
			)
			p.metrics.IncFailed()
			p.reportTaskError(fmt.Errorf("taskq: task panicked: %v", r))
		}
		if task.CleanupFunc != nil {
			task.CleanupFunc()
		}
	}()

	if err := p.processTask(ctx, id, task); err != nil {
		p.metrics.IncFailed()
		p.reportTaskError(err)
		return
	}
	p.metrics.IncExecuted()
}

func (p *Pool[T]) processTask(ctx context.Context, id int, task Task[T]) error {
	logger := lg.FromContext(ctx).With(
		lg.Int("worker", id),
		lg.Any("payload", task.Payload),
	)
	logger.Info("worker processing task",
		lg.Int32("active_workers", p.activeWorkers.Add(1)))
	defer p.activeWorkers.Add(-1)

	pol := p.defaultRetry.merge(task.Retry)
	bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())

	for attempt := 1; ; attempt++ {
		err := p.fn(ctx, task.Payload)
		if err == nil {
			logger.Info("worker finished task")
			return nil
		}
		if attempt == pol.Attempts {
			logger.Error("task failed", lg.Int("attempt", attempt), lg.Any("error", err))
			return err
		}
		delay := bo.Next()
		logger.Warn("task attempt failed; backing off",
			lg.Int("attempt", attempt),
			lg.String("sleep", delay.String()),
			lg.Any("error", err),
		)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C // drain if timer already fired
			}
			logger.Info("task canceled", lg.Any("reason", ctx.Err()))
			return ctx.Err()
		}
	}
}

// reportTaskError reports an error produced by a task or by panic
// recovery. Task errors do not stop pool execution; if no handler is
// registered, they are only logged.
func (p *Pool[T]) reportTaskError(err error) {
	if p.onTaskError != nil {
		p.onTaskError(err)
	}
}

// ActiveWorkers reports how many workers are processing a task right now.
func (p *Pool[T]) ActiveWorkers() int32 { return p.activeWorkers.Load() }

// QueueLength reports the number of tasks still pending on the queue.
func (p *Pool[T]) QueueLength() int { return p.queue.Len() }
