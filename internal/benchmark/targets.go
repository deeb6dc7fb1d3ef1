package benchmark

import (
	"github.com/marisa/content-optimizer/internal/types"
)

const (
	// Placement strategy thresholds on contextual relevance.
	primaryPlacementRelevance    = 50.0
	supportingPlacementRelevance = 25.0

	// maxSuggestedEntities caps the per-type entity suggestions.
	maxSuggestedEntities = 5
)

// DeriveTargets converts statistical benchmarks into rounded, actionable
// optimization targets for the content generator. The density target is
// re-rounded to 3 decimals; the benchmark value already carries that
// precision, so the operation is idempotent.
func DeriveTargets(benchmarks *types.PreciseBenchmarks) *types.ExactTargets {
	targets := &types.ExactTargets{
		TargetKeywordDensity:    round3(benchmarks.AverageKeywordDensity),
		TargetOptimizedHeadings: benchmarks.AverageOptimizedHeadings,
		TargetWordCount:         benchmarks.AverageWordCount,
		LSIKeywordTargets:       make([]types.LSIKeywordTarget, 0, len(benchmarks.LSIKeywordFrequencies)),
		EntityTargets:           make([]types.EntityTarget, 0, len(benchmarks.EntityUsagePatterns)),
	}

	for _, stat := range benchmarks.LSIKeywordFrequencies {
		targets.LSIKeywordTargets = append(targets.LSIKeywordTargets, types.LSIKeywordTarget{
			Keyword:           stat.Keyword,
			TargetFrequency:   roundToInt(stat.AverageFrequency),
			TargetDensity:     round3(stat.AverageDensity),
			PlacementStrategy: placementStrategy(stat),
		})
	}

	for _, pattern := range benchmarks.EntityUsagePatterns {
		suggested := pattern.CommonEntities
		if len(suggested) > maxSuggestedEntities {
			suggested = suggested[:maxSuggestedEntities]
		}
		targets.EntityTargets = append(targets.EntityTargets, types.EntityTarget{
			EntityType:        pattern.EntityType,
			TargetCount:       roundToInt(pattern.AverageCount),
			TargetDensity:     pattern.AverageDensity,
			SuggestedEntities: suggested,
		})
	}

	return targets
}

// placementStrategy picks where a LSI keyword should be integrated based on
// its usage pattern and contextual relevance.
func placementStrategy(stat types.LSIKeywordStat) string {
	switch {
	case stat.UsagePattern == types.UsagePatternHigh && stat.ContextualRelevance > primaryPlacementRelevance:
		return types.PlacementPrimarySections
	case stat.UsagePattern == types.UsagePatternMedium || stat.ContextualRelevance > supportingPlacementRelevance:
		return types.PlacementSupportingParagraph
	default:
		return types.PlacementContextualMentions
	}
}
