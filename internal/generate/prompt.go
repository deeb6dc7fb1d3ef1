// Package generate - prompt.go builds the generation brief sent to the LLM.
package generate

import (
	"fmt"
	"strings"

	"github.com/marisa/content-optimizer/internal/types"
)

// buildBrief renders a generation request into the task input for the
// article draft prompt. Targets derived from competitor benchmarks are
// spelled out as explicit numbers the model must hit.
func buildBrief(req types.GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Primary keyword: %s\n", req.Keyword))
	if req.Title != "" {
		sb.WriteString(fmt.Sprintf("Working title: %s\n", req.Title))
	}
	if req.Audience != "" {
		sb.WriteString(fmt.Sprintf("Audience: %s\n", req.Audience))
	}
	if req.Tone != "" {
		sb.WriteString(fmt.Sprintf("Tone: %s\n", req.Tone))
	}

	if req.Targets == nil {
		sb.WriteString("\nNo competitor targets available. Write a thorough, well-structured article of at least 1200 words with the keyword in the title and several headings.\n")
		return sb.String()
	}

	t := req.Targets
	sb.WriteString("\nOptimization targets from competitor benchmarking:\n")
	sb.WriteString(fmt.Sprintf("- Word count: approximately %d words\n", t.TargetWordCount))
	sb.WriteString(fmt.Sprintf("- Keyword density: %.3f%% of all words should be the primary keyword\n", t.TargetKeywordDensity))
	sb.WriteString(fmt.Sprintf("- Headings containing the keyword (h1-h3): %d\n", t.TargetOptimizedHeadings))

	if len(t.LSIKeywordTargets) > 0 {
		sb.WriteString("\nRelated keywords to include:\n")
		for _, lsi := range t.LSIKeywordTargets {
			sb.WriteString(fmt.Sprintf("- %q about %d times, placement: %s\n",
				lsi.Keyword, lsi.TargetFrequency, describePlacement(lsi.PlacementStrategy)))
		}
	}

	if len(t.EntityTargets) > 0 {
		sb.WriteString("\nNamed entities to reference:\n")
		for _, entity := range t.EntityTargets {
			line := fmt.Sprintf("- %s entities, about %d mentions", entity.EntityType, entity.TargetCount)
			if len(entity.SuggestedEntities) > 0 {
				line += fmt.Sprintf(" (e.g., %s)", strings.Join(entity.SuggestedEntities, ", "))
			}
			sb.WriteString(line + "\n")
		}
	}

	return sb.String()
}

// describePlacement translates a placement strategy label into writing
// guidance the model can follow.
func describePlacement(strategy string) string {
	switch strategy {
	case types.PlacementPrimarySections:
		return "use in main section headings and opening paragraphs"
	case types.PlacementSupportingParagraph:
		return "weave into supporting paragraphs"
	case types.PlacementContextualMentions:
		return "mention where contextually natural"
	default:
		return "mention where contextually natural"
	}
}
