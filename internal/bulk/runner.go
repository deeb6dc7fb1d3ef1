package bulk

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/marisa/content-optimizer/internal/types"
)

// GenerateFunc is the content generation function driven by the runner.
// The runner treats it as an opaque black box: it is invoked identically
// whether the run holds one item or a thousand.
type GenerateFunc func(ctx context.Context, request types.GenerationRequest) (*types.GeneratedContent, error)

// Runner executes bulk generation runs. It holds no cross-run state: every
// Process call builds a fresh result and accumulators.
type Runner struct {
	generate GenerateFunc
}

// NewRunner creates a Runner around the given generation function.
func NewRunner(generate GenerateFunc) *Runner {
	return &Runner{generate: generate}
}

// Process executes every item of the request under the configured
// concurrency cap and returns an aggregated result.
//
// Items are partitioned into sequential batches of BatchSize; within a batch
// items start in index order and complete in any order. The concurrency cap
// is a single semaphore spanning the whole run, not a per-batch limit. A
// failed item is retried with exponential backoff, then recorded in Errors;
// item failures never abort the run or surface as an error from Process.
// The only error return is a *ConfigError for a malformed configuration,
// raised before any processing begins. Cancelling ctx stops further attempts
// and records the remaining items as failures; the partial result is still
// returned.
func (r *Runner) Process(ctx context.Context, request types.BulkRequest, onProgress ProgressFunc) (*types.BulkResult, error) {
	cfg, err := normalizeConfig(request.Config)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := &types.BulkResult{
		RunID:      uuid.New().String(),
		TotalItems: len(request.Items),
		Results:    []types.BulkItemResult{},
		Errors:     []types.BulkItemError{},
	}

	if len(request.Items) == 0 {
		result.Performance = buildPerformance(0, time.Since(start), 0, cfg.MaxConcurrency)
		return result, nil
	}

	batches := partitionItems(request.Items, cfg.BatchSize)
	tracker := newProgressTracker(len(request.Items), len(batches), onProgress, *cfg.ProgressTracking)
	sem := semaphore.NewWeighted(int64(cfg.MaxConcurrency))

	var (
		mu            sync.Mutex
		itemDurations time.Duration
	)

	for batchIndex, batch := range batches {
		tracker.setBatch(batchIndex + 1)

		var wg sync.WaitGroup
		for offset, item := range batch {
			itemIndex := batchIndex*cfg.BatchSize + offset

			wg.Add(1)
			go func(itemIndex int, item types.GenerationRequest) {
				defer wg.Done()

				if err := sem.Acquire(ctx, 1); err != nil {
					mu.Lock()
					result.Errors = append(result.Errors, types.BulkItemError{
						ItemIndex: itemIndex,
						Request:   item,
						Error:     err.Error(),
						Timestamp: time.Now(),
					})
					mu.Unlock()
					tracker.itemDone(true)
					return
				}

				itemStart := time.Now()
				content, attempts, genErr := r.executeWithRetry(ctx, item, cfg)
				sem.Release(1)
				duration := time.Since(itemStart)

				mu.Lock()
				itemDurations += duration
				if genErr != nil {
					result.Errors = append(result.Errors, types.BulkItemError{
						ItemIndex:  itemIndex,
						Request:    item,
						Error:      genErr.Error(),
						RetryCount: attempts - 1,
						Timestamp:  time.Now(),
					})
				} else {
					result.Results = append(result.Results, types.BulkItemResult{
						ItemIndex: itemIndex,
						Content:   content,
						Attempts:  attempts,
						Duration:  duration,
					})
				}
				mu.Unlock()

				tracker.itemDone(genErr != nil)
			}(itemIndex, item)
		}
		wg.Wait()
	}

	result.SuccessCount = len(result.Results)
	result.FailureCount = len(result.Errors)
	result.ProcessingTime = time.Since(start)
	result.Performance = buildPerformance(len(request.Items), result.ProcessingTime, itemDurations, cfg.MaxConcurrency)

	return result, nil
}

// partitionItems splits items into sequential batches of batchSize.
func partitionItems(items []types.GenerationRequest, batchSize int) [][]types.GenerationRequest {
	batches := make([][]types.GenerationRequest, 0, (len(items)+batchSize-1)/batchSize)
	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
