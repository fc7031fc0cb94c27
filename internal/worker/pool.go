// Package worker runs long file operations off the caller's goroutine.
package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/filecatalog/internal/logger"
)

// ErrPoolStopped is returned by Enqueue once Stop has been called.
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed number of goroutines. Stopping the pool
// cancels the context of running jobs.
type Pool struct {
	workers int
	jobs    chan Job
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a pool. Fewer than one worker means one.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			ctx := logger.WithOpID(p.ctx, logger.GenerateOpID())
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Enqueue adds a job, blocking while the queue is full.
func (p *Pool) Enqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.jobs <- job:
		return nil
	case <-p.ctx.Done():
		return ErrPoolStopped
	}
}

// Stop cancels running jobs, drops queued ones and waits for the workers.
func (p *Pool) Stop() {
	p.cancel()
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	p.wg.Wait()

	if n := len(p.jobs); n > 0 {
		logger.Warn(LogMsgWorkerJobsDropped, "count", n)
	}
}
