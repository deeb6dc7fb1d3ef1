package benchmark

import (
	"math"
	"sort"

	"github.com/marisa/content-optimizer/internal/types"
)

const (
	// maxLSIKeywords caps the ranked LSI keyword list.
	maxLSIKeywords = 20

	// Usage pattern thresholds on average frequency.
	highFrequencyThreshold   = 5.0
	mediumFrequencyThreshold = 2.0
)

// lsiAccumulator collects per-keyword observations across the sample.
type lsiAccumulator struct {
	frequencies []float64
	densities   []float64
}

// aggregateLSIKeywords groups LSI keywords by exact string across the sample
// and computes mean frequency and density over the competitors that actually
// reported the keyword (no zero-fill for absent competitors; see DESIGN.md
// for the contrast with entity averaging). Results are ranked by contextual
// relevance, capped at maxLSIKeywords.
func aggregateLSIKeywords(competitors []types.CompetitorRecord) []types.LSIKeywordStat {
	grouped := make(map[string]*lsiAccumulator)
	order := make([]string, 0)

	for _, c := range competitors {
		for _, lsi := range c.LSIKeywords {
			acc, ok := grouped[lsi.Keyword]
			if !ok {
				acc = &lsiAccumulator{}
				grouped[lsi.Keyword] = acc
				order = append(order, lsi.Keyword)
			}
			acc.frequencies = append(acc.frequencies, float64(lsi.Frequency))
			acc.densities = append(acc.densities, lsi.Density)
		}
	}

	stats := make([]types.LSIKeywordStat, 0, len(grouped))
	for _, keyword := range order {
		acc := grouped[keyword]
		avgFrequency := round3(mean(acc.frequencies))
		avgDensity := round3(mean(acc.densities))

		stats = append(stats, types.LSIKeywordStat{
			Keyword:             keyword,
			AverageFrequency:    avgFrequency,
			AverageDensity:      avgDensity,
			UsagePattern:        classifyUsagePattern(avgFrequency),
			ContextualRelevance: contextualRelevance(avgFrequency, avgDensity),
		})
	}

	// Rank by relevance; tie-break on keyword for deterministic output.
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].ContextualRelevance != stats[j].ContextualRelevance {
			return stats[i].ContextualRelevance > stats[j].ContextualRelevance
		}
		return stats[i].Keyword < stats[j].Keyword
	})

	if len(stats) > maxLSIKeywords {
		stats = stats[:maxLSIKeywords]
	}
	return stats
}

// classifyUsagePattern buckets a keyword by its average frequency.
func classifyUsagePattern(avgFrequency float64) string {
	switch {
	case avgFrequency >= highFrequencyThreshold:
		return types.UsagePatternHigh
	case avgFrequency >= mediumFrequencyThreshold:
		return types.UsagePatternMedium
	default:
		return types.UsagePatternLow
	}
}

// contextualRelevance scores how central a keyword is to the topic,
// capped at 100.
func contextualRelevance(avgFrequency, avgDensity float64) float64 {
	return math.Min(100, avgFrequency*avgDensity*10)
}
