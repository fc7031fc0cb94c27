package rename

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/filecatalog/internal/domain"
	"github.com/osse101/filecatalog/internal/logger"
	"github.com/osse101/filecatalog/internal/metrics"
)

// Result is the outcome of one file operation within a batch item.
type Result struct {
	Item    string
	Source  string
	Dest    string
	Err     error
	Skipped bool
}

// OK reports whether the operation was applied.
func (r Result) OK() bool { return r.Err == nil && !r.Skipped }

func (r Result) status() string {
	switch {
	case r.Err != nil:
		return metrics.StatusError
	case r.Skipped:
		return metrics.StatusSkipped
	default:
		return metrics.StatusOK
	}
}

// Operation applies one kind of file operation to a single item.
type Operation interface {
	Kind() domain.Operation
	Apply(ctx context.Context, item string) []Result
}

// Batch walks a list of items through an Operation one Step at a time, so
// the host can interleave progress updates and cancellation.
type Batch struct {
	op    Operation
	items []string

	mu        sync.Mutex
	index     int
	cancelled bool
	results   []Result
}

// NewBatch prepares op over items. The items slice is copied.
func NewBatch(op Operation, items []string) *Batch {
	return &Batch{op: op, items: append([]string(nil), items...)}
}

// Kind returns the operation the batch applies.
func (b *Batch) Kind() domain.Operation { return b.op.Kind() }

// Step processes the next item. It returns true once the batch is
// cancelled or every item has been processed; no item is touched in that
// case.
func (b *Batch) Step(ctx context.Context) bool {
	b.mu.Lock()
	if b.cancelled || b.index >= len(b.items) {
		b.mu.Unlock()
		return true
	}
	item := b.items[b.index]
	b.mu.Unlock()

	results := b.op.Apply(ctx, item)
	for _, r := range results {
		metrics.BatchItemsTotal.WithLabelValues(string(b.op.Kind()), r.status()).Inc()
	}

	b.mu.Lock()
	b.results = append(b.results, results...)
	b.index++
	b.mu.Unlock()
	return false
}

// Cancel stops the batch before its next item. Items already processed
// stay processed.
func (b *Batch) Cancel() {
	b.mu.Lock()
	b.cancelled = true
	b.mu.Unlock()
}

// Cancelled reports whether Cancel was called.
func (b *Batch) Cancelled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancelled
}

// Progress returns the number of processed items and the total.
func (b *Batch) Progress() (done, total int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.index, len(b.items)
}

// Results returns a copy of the results collected so far.
func (b *Batch) Results() []Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Result(nil), b.results...)
}

// Failed returns the results that carry an error.
func (b *Batch) Failed() []Result {
	var out []Result
	for _, r := range b.Results() {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// ProgressFunc is told how many items are done after every step.
type ProgressFunc func(done, total int)

// Run drives b to completion. A cancelled ctx cancels the batch before the
// next item.
func Run(ctx context.Context, b *Batch, onProgress ProgressFunc) []Result {
	if _, ok := logger.OpIDFromContext(ctx); !ok {
		ctx = logger.WithOpID(ctx, logger.GenerateOpID())
	}
	log := logger.FromContext(ctx)

	kind := string(b.Kind())
	_, total := b.Progress()
	log.Info(LogMsgBatchStarted, "operation", kind, "items", total)

	metrics.BatchesInFlight.Inc()
	defer metrics.BatchesInFlight.Dec()
	start := time.Now()

	for {
		if ctx.Err() != nil {
			b.Cancel()
		}
		if b.Step(ctx) {
			break
		}
		if onProgress != nil {
			onProgress(b.Progress())
		}
	}

	metrics.BatchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	done, _ := b.Progress()
	if b.Cancelled() {
		log.Warn(LogMsgBatchCancelled, "operation", kind, "done", done, "items", total)
	} else {
		log.Info(LogMsgBatchFinished, "operation", kind, "items", total, "failed", len(b.Failed()))
	}
	return b.Results()
}
