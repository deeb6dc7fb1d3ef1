// Package generate - quality.go scores drafts against their targets.
package generate

import (
	"math"

	"github.com/marisa/content-optimizer/internal/types"
)

// Quality score component weights. Density adherence matters most because it
// is the hardest target for a model to hit.
const (
	densityWeight   = 40.0
	headingsWeight  = 30.0
	wordCountWeight = 30.0
)

// baselineQualityScore is assigned when no targets exist to measure against.
const baselineQualityScore = 70.0

// qualityScore measures how closely a draft hit its targets, 0 to 100.
// Each component scores proportionally to how far the measured value landed
// from its target.
func qualityScore(content *types.GeneratedContent, targets *types.ExactTargets) float64 {
	if targets == nil {
		return baselineQualityScore
	}

	score := 0.0
	score += densityWeight * closeness(content.AchievedKeywordDensity, targets.TargetKeywordDensity)
	score += headingsWeight * closeness(float64(content.AchievedHeadingCount), float64(targets.TargetOptimizedHeadings))
	score += wordCountWeight * closeness(float64(content.WordCount), float64(targets.TargetWordCount))

	return math.Round(score*10) / 10
}

// closeness returns 1.0 for an exact hit, decaying linearly to 0.0 at twice
// the target distance. A zero target scores full marks only for a zero value.
func closeness(achieved, target float64) float64 {
	if target == 0 {
		if achieved == 0 {
			return 1.0
		}
		return 0.0
	}
	deviation := math.Abs(achieved-target) / target
	if deviation >= 1.0 {
		return 0.0
	}
	return 1.0 - deviation
}
