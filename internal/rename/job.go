package rename

import (
	"context"
	"fmt"
)

// Job runs a Batch on a worker pool. Wait blocks until the batch has
// finished or been cancelled.
type Job struct {
	batch      *Batch
	onProgress ProgressFunc
	done       chan struct{}
	results    []Result
}

// NewJob wraps b. onProgress may be nil.
func NewJob(b *Batch, onProgress ProgressFunc) *Job {
	return &Job{batch: b, onProgress: onProgress, done: make(chan struct{})}
}

// Batch returns the wrapped batch.
func (j *Job) Batch() *Batch { return j.batch }

// Process implements worker.Job. The error summarises failed operations;
// the individual failures are in the results.
func (j *Job) Process(ctx context.Context) error {
	defer close(j.done)
	j.results = Run(ctx, j.batch, j.onProgress)
	if failed := j.batch.Failed(); len(failed) > 0 {
		return fmt.Errorf("%s: %d of %d operations failed", j.batch.Kind(), len(failed), len(j.results))
	}
	return nil
}

// Cancel stops the batch before its next item.
func (j *Job) Cancel() { j.batch.Cancel() }

// Wait returns the results once the job has run.
func (j *Job) Wait(ctx context.Context) ([]Result, error) {
	select {
	case <-j.done:
		return j.results, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
