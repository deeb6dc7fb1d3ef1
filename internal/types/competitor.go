// Package types provides type definitions for structured data used throughout the content-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SampleSize is the number of competitor records required for one aggregation.
// The statistical model (population stddev, 95% CI) is calibrated to a
// fixed-size sample; changing this invalidates the derived targets.
const SampleSize = 5

// CompetitorRecord represents the analyzed SEO metrics of a single
// competitor search-result page.
type CompetitorRecord struct {
	URL                   string       `json:"url"`
	WordCount             int          `json:"word_count"`
	KeywordDensity        float64      `json:"keyword_density"` // percentage
	OptimizedHeadingCount int          `json:"optimized_heading_count"`
	LSIKeywords           []LSIKeyword `json:"lsi_keywords"`
	Entities              []Entity     `json:"entities"`
	Content               string       `json:"content"`
}

// LSIKeyword represents a latent-semantically-related term observed on a
// competitor page.
type LSIKeyword struct {
	Keyword   string  `json:"keyword"`
	Frequency int     `json:"frequency"`
	Density   float64 `json:"density"` // percentage
}

// Entity represents a named entity observed on a competitor page.
type Entity struct {
	Text      string `json:"text"`
	Type      string `json:"type"` // person, organization, location, other
	Frequency int    `json:"frequency"`
}
