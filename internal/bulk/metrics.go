package bulk

import (
	"math"
	"runtime"
	"time"

	"github.com/marisa/content-optimizer/internal/types"
)

// buildPerformance assembles run-level performance metrics.
func buildPerformance(totalItems int, elapsed, itemDurations time.Duration, maxConcurrency int) types.BulkPerformance {
	perf := types.BulkPerformance{}

	if totalItems > 0 {
		perf.AverageItemTime = itemDurations / time.Duration(totalItems)
		perf.ConcurrencyUtilization = math.Min(float64(totalItems)/float64(maxConcurrency), 1) * 100
	}

	if elapsed > 0 {
		perf.ThroughputPerSecond = float64(totalItems) / elapsed.Seconds()
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	perf.HeapAllocBytes = memStats.HeapAlloc

	return perf
}
