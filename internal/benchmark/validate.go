package benchmark

import (
	"fmt"
	"strings"

	"github.com/marisa/content-optimizer/internal/types"
)

// validateCompetitors checks the sample size and each record's fields,
// failing fast on the first violation.
func validateCompetitors(competitors []types.CompetitorRecord) error {
	if len(competitors) != types.SampleSize {
		return &ValidationError{
			Message: fmt.Sprintf("exactly %d competitor records are required, got %d", types.SampleSize, len(competitors)),
		}
	}

	for i, c := range competitors {
		ordinal := i + 1

		if strings.TrimSpace(c.URL) == "" {
			return &ValidationError{Competitor: ordinal, Field: "url", Message: "must not be empty"}
		}
		if c.WordCount <= 0 {
			return &ValidationError{Competitor: ordinal, Field: "word_count", Message: fmt.Sprintf("must be positive, got %d", c.WordCount)}
		}
		if c.KeywordDensity < 0 {
			return &ValidationError{Competitor: ordinal, Field: "keyword_density", Message: fmt.Sprintf("must not be negative, got %g", c.KeywordDensity)}
		}
		if c.OptimizedHeadingCount < 0 {
			return &ValidationError{Competitor: ordinal, Field: "optimized_heading_count", Message: fmt.Sprintf("must not be negative, got %d", c.OptimizedHeadingCount)}
		}
		if strings.TrimSpace(c.Content) == "" {
			return &ValidationError{Competitor: ordinal, Field: "content", Message: "must not be empty"}
		}

		for j, lsi := range c.LSIKeywords {
			if strings.TrimSpace(lsi.Keyword) == "" {
				return &ValidationError{Competitor: ordinal, Field: fmt.Sprintf("lsi_keywords[%d].keyword", j), Message: "must not be empty"}
			}
			if lsi.Frequency < 0 {
				return &ValidationError{Competitor: ordinal, Field: fmt.Sprintf("lsi_keywords[%d].frequency", j), Message: fmt.Sprintf("must not be negative, got %d", lsi.Frequency)}
			}
			if lsi.Density < 0 {
				return &ValidationError{Competitor: ordinal, Field: fmt.Sprintf("lsi_keywords[%d].density", j), Message: fmt.Sprintf("must not be negative, got %g", lsi.Density)}
			}
		}

		for j, entity := range c.Entities {
			if strings.TrimSpace(entity.Text) == "" {
				return &ValidationError{Competitor: ordinal, Field: fmt.Sprintf("entities[%d].text", j), Message: "must not be empty"}
			}
			if strings.TrimSpace(entity.Type) == "" {
				return &ValidationError{Competitor: ordinal, Field: fmt.Sprintf("entities[%d].type", j), Message: "must not be empty"}
			}
			if entity.Frequency < 0 {
				return &ValidationError{Competitor: ordinal, Field: fmt.Sprintf("entities[%d].frequency", j), Message: fmt.Sprintf("must not be negative, got %d", entity.Frequency)}
			}
		}
	}

	return nil
}
