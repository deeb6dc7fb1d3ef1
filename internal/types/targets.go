// Package types provides type definitions for structured data used throughout the content-optimizer system.
package types

// Placement strategies for LSI keyword targets.
const (
	PlacementPrimarySections     = "primary_sections_and_headings"
	PlacementSupportingParagraph = "supporting_paragraphs"
	PlacementContextualMentions  = "contextual_mentions"
)

// ExactTargets represents rounded, actionable optimization targets derived
// from PreciseBenchmarks, handed to the content generator.
type ExactTargets struct {
	TargetKeywordDensity    float64            `json:"target_keyword_density"` // 3-decimal precision
	TargetOptimizedHeadings int                `json:"target_optimized_headings"`
	TargetWordCount         int                `json:"target_word_count"`
	LSIKeywordTargets       []LSIKeywordTarget `json:"lsi_keyword_targets"`
	EntityTargets           []EntityTarget     `json:"entity_integration_targets"`
}

// LSIKeywordTarget represents the per-keyword integration target.
type LSIKeywordTarget struct {
	Keyword           string  `json:"keyword"`
	TargetFrequency   int     `json:"target_frequency"`
	TargetDensity     float64 `json:"target_density"`
	PlacementStrategy string  `json:"placement_strategy"`
}

// EntityTarget represents the per-type entity integration target.
type EntityTarget struct {
	EntityType        string   `json:"entity_type"`
	TargetCount       int      `json:"target_count"`
	TargetDensity     float64  `json:"target_density"`
	SuggestedEntities []string `json:"suggested_entities"` // top 5
}
