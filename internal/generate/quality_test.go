package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marisa/content-optimizer/internal/types"
)

func TestCloseness(t *testing.T) {
	assert.Equal(t, 1.0, closeness(2.5, 2.5))
	assert.Equal(t, 0.5, closeness(1500, 1000))
	assert.Equal(t, 0.5, closeness(500, 1000))
	assert.Equal(t, 0.0, closeness(3000, 1000))
	assert.Equal(t, 1.0, closeness(0, 0))
	assert.Equal(t, 0.0, closeness(5, 0))
}

func TestQualityScore_ExactHit(t *testing.T) {
	content := &types.GeneratedContent{
		WordCount:              1500,
		AchievedKeywordDensity: 2.5,
		AchievedHeadingCount:   4,
	}
	targets := &types.ExactTargets{
		TargetKeywordDensity:    2.5,
		TargetOptimizedHeadings: 4,
		TargetWordCount:         1500,
	}

	assert.Equal(t, 100.0, qualityScore(content, targets))
}

func TestQualityScore_PartialHit(t *testing.T) {
	content := &types.GeneratedContent{
		WordCount:              750, // half the target
		AchievedKeywordDensity: 2.5,
		AchievedHeadingCount:   4,
	}
	targets := &types.ExactTargets{
		TargetKeywordDensity:    2.5,
		TargetOptimizedHeadings: 4,
		TargetWordCount:         1500,
	}

	// Word count component contributes half of its 30 points.
	assert.Equal(t, 85.0, qualityScore(content, targets))
}

func TestQualityScore_NilTargets(t *testing.T) {
	content := &types.GeneratedContent{WordCount: 1000}

	assert.Equal(t, baselineQualityScore, qualityScore(content, nil))
}
