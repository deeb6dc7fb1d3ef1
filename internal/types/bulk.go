// Package types provides type definitions for structured data used throughout the content-optimizer system.
package types

import "time"

// Default values for BulkConfig. Documented here so CLI, server, and runner
// agree on what an omitted field means.
const (
	DefaultMaxConcurrency = 50
	DefaultBatchSize      = 10
	DefaultRetryAttempts  = 3
	DefaultRetryDelay     = 1 * time.Second
	DefaultItemTimeout    = 5 * time.Minute
)

// BulkRequest represents a bulk content generation run: an ordered list of
// independent generation jobs plus an optional configuration override.
// UserID and ProjectID are opaque pass-through identifiers.
type BulkRequest struct {
	Items     []GenerationRequest `json:"items"`
	Config    *BulkConfig         `json:"config,omitempty"`
	UserID    string              `json:"user_id,omitempty"`
	ProjectID string              `json:"project_id,omitempty"`
}

// BulkConfig controls batching, concurrency, retry, and timeout behavior of
// a bulk run. Zero values are replaced by the documented defaults.
type BulkConfig struct {
	MaxConcurrency   int           `json:"max_concurrency"`   // default 50
	BatchSize        int           `json:"batch_size"`        // default 10
	RetryAttempts    int           `json:"retry_attempts"`    // default 3
	RetryDelay       time.Duration `json:"retry_delay"`       // default 1s, exponential backoff
	ItemTimeout      time.Duration `json:"item_timeout"`      // default 5m
	ProgressTracking *bool         `json:"progress_tracking"` // default true
}

// BulkItemResult wraps one successful generation output. ItemIndex is the
// 0-based position of the originating request in BulkRequest.Items; the
// results slice itself is compacted and completion-ordered, so callers must
// use ItemIndex, not slice position, to map a result back to its request.
type BulkItemResult struct {
	ItemIndex int               `json:"item_index"`
	Content   *GeneratedContent `json:"content"`
	Attempts  int               `json:"attempts"`
	Duration  time.Duration     `json:"duration"`
}

// BulkItemError records one item that exhausted its retries.
type BulkItemError struct {
	ItemIndex  int               `json:"item_index"`
	Request    GenerationRequest `json:"request"`
	Error      string            `json:"error"`
	RetryCount int               `json:"retry_count"`
	Timestamp  time.Time         `json:"timestamp"`
}

// BulkResult represents the outcome of a completed bulk run. It is always
// returned, even when every item failed; callers inspect FailureCount and
// Errors to detect degraded outcomes.
type BulkResult struct {
	RunID          string           `json:"run_id"`
	TotalItems     int              `json:"total_items"`
	SuccessCount   int              `json:"success_count"`
	FailureCount   int              `json:"failure_count"`
	ProcessingTime time.Duration    `json:"processing_time"`
	Results        []BulkItemResult `json:"results"` // successes only, completion order
	Errors         []BulkItemError  `json:"errors"`  // completion order
	Performance    BulkPerformance  `json:"performance"`
}

// BulkPerformance holds run-level performance metrics.
type BulkPerformance struct {
	AverageItemTime        time.Duration `json:"average_item_time"`
	ThroughputPerSecond    float64       `json:"throughput_per_second"`
	HeapAllocBytes         uint64        `json:"heap_alloc_bytes"`
	ConcurrencyUtilization float64       `json:"concurrency_utilization"` // percent
}

// ProgressUpdate is delivered to the progress callback after each item
// completes (success or failure).
type ProgressUpdate struct {
	TotalItems             int     `json:"total_items"`
	CompletedItems         int     `json:"completed_items"` // successes + failures
	FailedItems            int     `json:"failed_items"`
	CurrentBatch           int     `json:"current_batch"` // 1-based
	TotalBatches           int     `json:"total_batches"`
	ThroughputPerSecond    float64 `json:"throughput_per_second"`
	EstimatedTimeRemaining time.Duration `json:"estimated_time_remaining"` // 0 when throughput is not finite
}
