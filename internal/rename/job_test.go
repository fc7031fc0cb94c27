package rename

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/filecatalog/internal/fileops"
	"github.com/osse101/filecatalog/internal/testing/leaktest"
	"github.com/osse101/filecatalog/internal/worker"
)

func TestJob_OnPool(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		mem := afero.NewMemMapFs()
		touch(t, mem, "/p/a.jpg", "/p/b.jpg")
		op := &Transfer{
			FS:       fileops.New(mem),
			Params:   newParams(t, "%n3.%e", Skip, ""),
			Metadata: staticMetadata,
			Move:     true,
		}

		pool := worker.NewPool(1, 1)
		pool.Start()
		defer pool.Stop()

		job := NewJob(NewBatch(op, []string{"/p/a.jpg", "/p/b.jpg"}), nil)
		require.NoError(t, pool.Enqueue(job))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		results, err := job.Wait(ctx)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "/p/001.jpg", results[0].Dest)
		assert.Equal(t, "/p/002.jpg", results[1].Dest)
	})
}

func TestJob_ProcessReportsFailures(t *testing.T) {
	op := &Delete{FS: fileops.New(afero.NewMemMapFs())}
	job := NewJob(NewBatch(op, []string{"/nope"}), nil)

	err := job.Process(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 operations failed")

	results, err := job.Wait(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestJob_CancelledBeforeRun(t *testing.T) {
	mem := afero.NewMemMapFs()
	touch(t, mem, "/p/a.jpg")
	job := NewJob(NewBatch(&Delete{FS: fileops.New(mem)}, []string{"/p/a.jpg"}), nil)
	job.Cancel()

	require.NoError(t, job.Process(context.Background()))
	assert.True(t, fileExists(t, mem, "/p/a.jpg"))
}
