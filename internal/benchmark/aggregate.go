package benchmark

import (
	"github.com/marisa/content-optimizer/internal/types"
)

// Aggregator computes statistical benchmarks from competitor samples.
// It holds no mutable state: CalculateBenchmarks is a pure function of its
// input and is safe for concurrent use.
type Aggregator struct{}

// NewAggregator creates a new Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// CalculateBenchmarks validates the competitor sample and computes precise
// statistical benchmarks: per-metric means, population standard deviations,
// 95% confidence intervals, ranked LSI keyword statistics, and ranked entity
// usage patterns. Identical input always yields identical output.
//
// It returns a *ValidationError when the sample size is not exactly
// types.SampleSize or any record fails field-level validation.
func (a *Aggregator) CalculateBenchmarks(competitors []types.CompetitorRecord) (*types.PreciseBenchmarks, error) {
	if err := validateCompetitors(competitors); err != nil {
		return nil, err
	}

	wordCounts := make([]float64, len(competitors))
	densities := make([]float64, len(competitors))
	headings := make([]float64, len(competitors))
	for i, c := range competitors {
		wordCounts[i] = float64(c.WordCount)
		densities[i] = c.KeywordDensity
		headings[i] = float64(c.OptimizedHeadingCount)
	}

	meanWordCount := mean(wordCounts)

	return &types.PreciseBenchmarks{
		AverageWordCount:         roundToInt(meanWordCount),
		AverageKeywordDensity:    round3(mean(densities)),
		AverageOptimizedHeadings: roundToInt(mean(headings)),
		LSIKeywordFrequencies:    aggregateLSIKeywords(competitors),
		EntityUsagePatterns:      aggregateEntities(competitors, meanWordCount),
		StandardDeviations: types.MetricSpread{
			WordCount:      populationStdDev(wordCounts),
			KeywordDensity: populationStdDev(densities),
			HeadingCount:   populationStdDev(headings),
		},
		ConfidenceIntervals: types.ConfidenceIntervals{
			WordCount:      confidenceInterval95(wordCounts),
			KeywordDensity: confidenceInterval95(densities),
			HeadingCount:   confidenceInterval95(headings),
		},
	}, nil
}
