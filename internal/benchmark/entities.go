package benchmark

import (
	"sort"

	"github.com/marisa/content-optimizer/internal/types"
)

const (
	// maxEntityTypes caps the ranked entity usage pattern list.
	maxEntityTypes = 15
	// maxCommonEntities caps the distinct entity texts carried per type.
	maxCommonEntities = 10
)

// entityAccumulator collects per-type observations across the sample.
type entityAccumulator struct {
	// perCompetitorCounts is zero-filled across the whole sample: a
	// competitor that mentions no entity of this type contributes 0, and
	// the average always divides by the full sample size.
	perCompetitorCounts []int
	commonEntities      []string
	seen                map[string]bool
}

// aggregateEntities enumerates the union of entity types across the sample
// and computes zero-filled per-competitor count vectors, averages, and
// densities relative to the mean word count. Results are ranked by average
// count, capped at maxEntityTypes.
func aggregateEntities(competitors []types.CompetitorRecord, meanWordCount float64) []types.EntityUsagePattern {
	grouped := make(map[string]*entityAccumulator)
	order := make([]string, 0)

	for i, c := range competitors {
		for _, entity := range c.Entities {
			acc, ok := grouped[entity.Type]
			if !ok {
				acc = &entityAccumulator{
					perCompetitorCounts: make([]int, len(competitors)),
					seen:                make(map[string]bool),
				}
				grouped[entity.Type] = acc
				order = append(order, entity.Type)
			}
			acc.perCompetitorCounts[i] += entity.Frequency
			if !acc.seen[entity.Text] && len(acc.commonEntities) < maxCommonEntities {
				acc.seen[entity.Text] = true
				acc.commonEntities = append(acc.commonEntities, entity.Text)
			}
		}
	}

	patterns := make([]types.EntityUsagePattern, 0, len(grouped))
	for _, entityType := range order {
		acc := grouped[entityType]

		total := 0
		for _, count := range acc.perCompetitorCounts {
			total += count
		}
		avgCount := float64(total) / float64(len(competitors))

		avgDensity := 0.0
		if meanWordCount > 0 {
			avgDensity = round3(avgCount / meanWordCount * 100)
		}

		patterns = append(patterns, types.EntityUsagePattern{
			EntityType:          entityType,
			AverageCount:        avgCount,
			AverageDensity:      avgDensity,
			CommonEntities:      acc.commonEntities,
			PerCompetitorCounts: acc.perCompetitorCounts,
		})
	}

	// Rank by average count; tie-break on type for deterministic output.
	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].AverageCount != patterns[j].AverageCount {
			return patterns[i].AverageCount > patterns[j].AverageCount
		}
		return patterns[i].EntityType < patterns[j].EntityType
	})

	if len(patterns) > maxEntityTypes {
		patterns = patterns[:maxEntityTypes]
	}
	return patterns
}
