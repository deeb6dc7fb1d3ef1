// Package types provides type definitions for structured data used throughout the content-optimizer system.
package types

// Usage pattern classifications for aggregated LSI keywords.
const (
	UsagePatternHigh   = "high"
	UsagePatternMedium = "medium"
	UsagePatternLow    = "low"
)

// PreciseBenchmarks represents statistical benchmarks aggregated from a
// fixed-size competitor sample. All values are derived deterministically
// from the input records.
type PreciseBenchmarks struct {
	AverageWordCount         int                  `json:"average_word_count"`
	AverageKeywordDensity    float64              `json:"average_keyword_density"` // 3-decimal precision
	AverageOptimizedHeadings int                  `json:"average_optimized_headings"`
	LSIKeywordFrequencies    []LSIKeywordStat     `json:"lsi_keyword_frequencies"` // ranked, top 20
	EntityUsagePatterns      []EntityUsagePattern `json:"entity_usage_patterns"`   // ranked, top 15
	StandardDeviations       MetricSpread         `json:"standard_deviations"`
	ConfidenceIntervals      ConfidenceIntervals  `json:"confidence_intervals"`
}

// LSIKeywordStat represents the aggregated usage statistics of one LSI
// keyword across the competitor sample.
type LSIKeywordStat struct {
	Keyword             string  `json:"keyword"`
	AverageFrequency    float64 `json:"average_frequency"`
	AverageDensity      float64 `json:"average_density"`
	UsagePattern        string  `json:"usage_pattern"` // high, medium, low
	ContextualRelevance float64 `json:"contextual_relevance"`
}

// EntityUsagePattern represents the aggregated usage of one entity type
// across the competitor sample.
type EntityUsagePattern struct {
	EntityType          string  `json:"entity_type"`
	AverageCount        float64 `json:"average_count"`
	AverageDensity      float64 `json:"average_density"`
	CommonEntities      []string `json:"common_entities"`       // up to 10 distinct texts
	PerCompetitorCounts []int    `json:"per_competitor_counts"` // zero-filled, len == SampleSize
}

// MetricSpread holds the population standard deviation per scalar metric.
type MetricSpread struct {
	WordCount      float64 `json:"word_count"`
	KeywordDensity float64 `json:"keyword_density"`
	HeadingCount   float64 `json:"heading_count"`
}

// ConfidenceIntervals holds the 95% confidence interval per scalar metric.
type ConfidenceIntervals struct {
	WordCount      ConfidenceInterval `json:"word_count"`
	KeywordDensity ConfidenceInterval `json:"keyword_density"`
	HeadingCount   ConfidenceInterval `json:"heading_count"`
}

// ConfidenceInterval represents a lower/upper bound around a mean.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}
