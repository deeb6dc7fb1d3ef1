package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisa/content-optimizer/internal/types"
)

func TestDeriveTargets_CopiesRoundedScalars(t *testing.T) {
	benchmarks := &types.PreciseBenchmarks{
		AverageWordCount:         1620,
		AverageKeywordDensity:    2.62,
		AverageOptimizedHeadings: 5,
	}

	targets := DeriveTargets(benchmarks)

	assert.Equal(t, 2.62, targets.TargetKeywordDensity)
	assert.Equal(t, 5, targets.TargetOptimizedHeadings)
	assert.Equal(t, 1620, targets.TargetWordCount)
}

func TestDeriveTargets_DensityRoundingIsIdempotent(t *testing.T) {
	benchmarks := &types.PreciseBenchmarks{AverageKeywordDensity: 2.62}

	first := DeriveTargets(benchmarks)
	second := DeriveTargets(&types.PreciseBenchmarks{AverageKeywordDensity: first.TargetKeywordDensity})

	assert.Equal(t, first.TargetKeywordDensity, second.TargetKeywordDensity)
}

func TestDeriveTargets_LSITargetRoundsFrequency(t *testing.T) {
	benchmarks := &types.PreciseBenchmarks{
		LSIKeywordFrequencies: []types.LSIKeywordStat{
			{Keyword: "content audit", AverageFrequency: 3.6, AverageDensity: 0.42, UsagePattern: types.UsagePatternMedium, ContextualRelevance: 15},
		},
	}

	targets := DeriveTargets(benchmarks)
	require.Len(t, targets.LSIKeywordTargets, 1)

	assert.Equal(t, 4, targets.LSIKeywordTargets[0].TargetFrequency)
	assert.Equal(t, 0.42, targets.LSIKeywordTargets[0].TargetDensity)
}

func TestPlacementStrategy_PrimaryRequiresHighAndRelevance(t *testing.T) {
	primary := placementStrategy(types.LSIKeywordStat{
		UsagePattern:        types.UsagePatternHigh,
		ContextualRelevance: 51,
	})
	assert.Equal(t, types.PlacementPrimarySections, primary)

	// High usage but low relevance drops to supporting placement only when
	// relevance clears the supporting threshold.
	supporting := placementStrategy(types.LSIKeywordStat{
		UsagePattern:        types.UsagePatternHigh,
		ContextualRelevance: 30,
	})
	assert.Equal(t, types.PlacementSupportingParagraph, supporting)
}

func TestPlacementStrategy_SupportingOnMediumOrRelevance(t *testing.T) {
	byPattern := placementStrategy(types.LSIKeywordStat{
		UsagePattern:        types.UsagePatternMedium,
		ContextualRelevance: 5,
	})
	assert.Equal(t, types.PlacementSupportingParagraph, byPattern)

	byRelevance := placementStrategy(types.LSIKeywordStat{
		UsagePattern:        types.UsagePatternLow,
		ContextualRelevance: 26,
	})
	assert.Equal(t, types.PlacementSupportingParagraph, byRelevance)
}

func TestPlacementStrategy_ContextualFallback(t *testing.T) {
	strategy := placementStrategy(types.LSIKeywordStat{
		UsagePattern:        types.UsagePatternLow,
		ContextualRelevance: 10,
	})
	assert.Equal(t, types.PlacementContextualMentions, strategy)
}

func TestDeriveTargets_EntityTargetSuggestionsCappedAtFive(t *testing.T) {
	benchmarks := &types.PreciseBenchmarks{
		EntityUsagePatterns: []types.EntityUsagePattern{
			{
				EntityType:     "organization",
				AverageCount:   3.4,
				AverageDensity: 0.21,
				CommonEntities: []string{"A", "B", "C", "D", "E", "F", "G"},
			},
		},
	}

	targets := DeriveTargets(benchmarks)
	require.Len(t, targets.EntityTargets, 1)

	assert.Equal(t, 3, targets.EntityTargets[0].TargetCount)
	assert.Equal(t, 0.21, targets.EntityTargets[0].TargetDensity)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, targets.EntityTargets[0].SuggestedEntities)
}

func TestDeriveTargets_EndToEndFromAggregator(t *testing.T) {
	agg := NewAggregator()
	competitors := sampleCompetitors()
	for i := range competitors {
		competitors[i].LSIKeywords = []types.LSIKeyword{
			{Keyword: "on-page seo", Frequency: 10, Density: 0.9},
		}
		competitors[i].Entities = []types.Entity{
			{Text: "Acme Corp", Type: "organization", Frequency: 3},
		}
	}

	benchmarks, err := agg.CalculateBenchmarks(competitors)
	require.NoError(t, err)
	targets := DeriveTargets(benchmarks)

	assert.Equal(t, 2.62, targets.TargetKeywordDensity)
	require.Len(t, targets.LSIKeywordTargets, 1)
	// avg frequency 10, density 0.9 -> relevance 90, high usage.
	assert.Equal(t, types.PlacementPrimarySections, targets.LSIKeywordTargets[0].PlacementStrategy)
	require.Len(t, targets.EntityTargets, 1)
	assert.Equal(t, 3, targets.EntityTargets[0].TargetCount)
}
