package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/filecatalog/internal/logger"
	"github.com/osse101/filecatalog/internal/testing/leaktest"
)

type countJob struct {
	executed *int32
	done     chan struct{}
}

func (j *countJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	j.done <- struct{}{}
	return nil
}

// blockingJob runs until its context is cancelled.
type blockingJob struct {
	started chan struct{}
	opID    string
}

func (j *blockingJob) Process(ctx context.Context) error {
	j.opID = logger.GetOpID(ctx)
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestPool(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start()

		job := &countJob{executed: &executed, done: make(chan struct{}, TestExpectedJobCount)}
		require.NoError(t, pool.Enqueue(job))
		require.NoError(t, pool.Enqueue(job))

		for i := 0; i < TestExpectedJobCount; i++ {
			select {
			case <-job.done:
			case <-time.After(time.Second):
				t.Fatal("job did not run")
			}
		}
		pool.Stop()

		assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
	})
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(1, 1)
		pool.Start()

		job := &blockingJob{started: make(chan struct{})}
		require.NoError(t, pool.Enqueue(job))
		<-job.started

		stopped := make(chan struct{})
		go func() {
			pool.Stop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("Stop did not return")
		}
		assert.NotEmpty(t, job.opID, "jobs run with an operation id")
	})
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(0, 1)
	pool.Start()
	pool.Stop()

	assert.ErrorIs(t, pool.Enqueue(&countJob{}), ErrPoolStopped)
}
