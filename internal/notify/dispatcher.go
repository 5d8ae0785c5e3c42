package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Job is a unit of background work, typically one outbound email.
type Job func(ctx context.Context) error

// Dispatcher runs notification jobs on a single background worker. Jobs are
// best-effort: failures are logged and never surfaced to the request that
// enqueued them, and a full queue drops the job rather than blocking.
type Dispatcher struct {
	jobs   chan Job
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewDispatcher(queueSize int, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		jobs:   make(chan Job, queueSize),
		logger: logger,
	}
}

// Start launches the worker. It stops when ctx is cancelled; pending jobs in
// the queue are abandoned at that point.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case job := <-d.jobs:
				if err := job(ctx); err != nil {
					d.logger.Error("notification job failed", "error", err)
				}
			}
		}
	}()
}

// Enqueue submits a job without blocking the caller.
func (d *Dispatcher) Enqueue(job Job) {
	select {
	case d.jobs <- job:
	default:
		d.logger.Warn("notification queue full, dropping job")
	}
}

// Wait blocks until the worker has exited after its context was cancelled.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
