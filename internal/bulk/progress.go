package bulk

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/marisa/content-optimizer/internal/types"
)

// ProgressFunc is invoked after each item completes (success or failure).
// It runs synchronously on the completing item's goroutine, so it should
// return quickly; panics are recovered and logged, never fatal to the run.
type ProgressFunc func(update types.ProgressUpdate)

// progressTracker accumulates completion counts and emits progress updates.
type progressTracker struct {
	mu           sync.Mutex
	totalItems   int
	totalBatches int
	currentBatch int
	completed    int
	failed       int
	start        time.Time
	onProgress   ProgressFunc
	enabled      bool
}

func newProgressTracker(totalItems, totalBatches int, onProgress ProgressFunc, enabled bool) *progressTracker {
	return &progressTracker{
		totalItems:   totalItems,
		totalBatches: totalBatches,
		start:        time.Now(),
		onProgress:   onProgress,
		enabled:      enabled && onProgress != nil,
	}
}

// setBatch records the 1-based index of the batch currently executing.
func (t *progressTracker) setBatch(batch int) {
	t.mu.Lock()
	t.currentBatch = batch
	t.mu.Unlock()
}

// itemDone records one completed item and emits a progress update.
func (t *progressTracker) itemDone(failed bool) {
	t.mu.Lock()
	t.completed++
	if failed {
		t.failed++
	}

	update := types.ProgressUpdate{
		TotalItems:     t.totalItems,
		CompletedItems: t.completed,
		FailedItems:    t.failed,
		CurrentBatch:   t.currentBatch,
		TotalBatches:   t.totalBatches,
	}

	elapsed := time.Since(t.start).Seconds()
	throughput := 0.0
	if elapsed > 0 {
		throughput = float64(t.completed) / elapsed
	}
	update.ThroughputPerSecond = throughput

	remaining := float64(t.totalItems-t.completed) / throughput
	if math.IsInf(remaining, 0) || math.IsNaN(remaining) {
		remaining = 0
	}
	update.EstimatedTimeRemaining = time.Duration(remaining * float64(time.Second))

	enabled := t.enabled
	callback := t.onProgress
	t.mu.Unlock()

	if !enabled {
		return
	}
	emitProgress(callback, update)
}

// emitProgress invokes the callback, recovering from panics so a misbehaving
// observer cannot abort the run.
func emitProgress(callback ProgressFunc, update types.ProgressUpdate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("bulk: progress callback panicked: %v", r)
		}
	}()
	callback(update)
}
