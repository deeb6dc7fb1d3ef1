// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/marisa/content-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCompetitors outputs a summary of the analyzed competitor sample.
func (p *Printer) PrintCompetitors(records []types.CompetitorRecord) {
	if len(records) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyzed %d competitors:\n\n", len(records)))

	for i, record := range records {
		url := record.URL
		if len(url) > 48 {
			url = url[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, url))
		sb.WriteString(fmt.Sprintf("    %d words, %.3f%% density, %d optimized headings\n",
			record.WordCount, record.KeywordDensity, record.OptimizedHeadingCount))
		if i < len(records)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("COMPETITOR SAMPLE", sb.String())
}

// PrintBenchmarks outputs the aggregated statistical benchmarks.
func (p *Printer) PrintBenchmarks(benchmarks *types.PreciseBenchmarks) {
	if benchmarks == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Avg word count:  %d (±%.1f)\n",
		benchmarks.AverageWordCount, benchmarks.StandardDeviations.WordCount))
	sb.WriteString(fmt.Sprintf("Avg density:     %.3f%% (±%.3f)\n",
		benchmarks.AverageKeywordDensity, benchmarks.StandardDeviations.KeywordDensity))
	sb.WriteString(fmt.Sprintf("Avg headings:    %d (±%.1f)\n",
		benchmarks.AverageOptimizedHeadings, benchmarks.StandardDeviations.HeadingCount))
	sb.WriteString(fmt.Sprintf("95%% CI words:    [%.0f, %.0f]\n",
		benchmarks.ConfidenceIntervals.WordCount.Lower, benchmarks.ConfidenceIntervals.WordCount.Upper))

	if len(benchmarks.LSIKeywordFrequencies) > 0 {
		sb.WriteString("\nTop LSI keywords:\n")
		count := min(len(benchmarks.LSIKeywordFrequencies), maxItemsToShow)
		for i := 0; i < count; i++ {
			stat := benchmarks.LSIKeywordFrequencies[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, relevance %.1f)\n",
				stat.Keyword, stat.UsagePattern, stat.ContextualRelevance))
		}
		if len(benchmarks.LSIKeywordFrequencies) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n",
				len(benchmarks.LSIKeywordFrequencies)-maxItemsToShow))
		}
	}

	if len(benchmarks.EntityUsagePatterns) > 0 {
		sb.WriteString("\nEntity usage:\n")
		count := min(len(benchmarks.EntityUsagePatterns), 3)
		for i := 0; i < count; i++ {
			pattern := benchmarks.EntityUsagePatterns[i]
			sb.WriteString(fmt.Sprintf("  • %s: %.1f avg mentions\n",
				pattern.EntityType, pattern.AverageCount))
		}
		if len(benchmarks.EntityUsagePatterns) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n",
				len(benchmarks.EntityUsagePatterns)-3))
		}
	}

	p.printBox("PRECISE BENCHMARKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTargets outputs the derived optimization targets.
func (p *Printer) PrintTargets(targets *types.ExactTargets) {
	if targets == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Word count:      %d\n", targets.TargetWordCount))
	sb.WriteString(fmt.Sprintf("Keyword density: %.3f%%\n", targets.TargetKeywordDensity))
	sb.WriteString(fmt.Sprintf("Headings:        %d\n", targets.TargetOptimizedHeadings))

	if len(targets.LSIKeywordTargets) > 0 {
		sb.WriteString("\nLSI keyword targets:\n")
		count := min(len(targets.LSIKeywordTargets), maxItemsToShow)
		for i := 0; i < count; i++ {
			target := targets.LSIKeywordTargets[i]
			sb.WriteString(fmt.Sprintf("  • %s ×%d (%s)\n",
				target.Keyword, target.TargetFrequency, target.PlacementStrategy))
		}
		if len(targets.LSIKeywordTargets) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n",
				len(targets.LSIKeywordTargets)-maxItemsToShow))
		}
	}

	if len(targets.EntityTargets) > 0 {
		sb.WriteString("\nEntity targets:\n")
		count := min(len(targets.EntityTargets), 3)
		for i := 0; i < count; i++ {
			target := targets.EntityTargets[i]
			sb.WriteString(fmt.Sprintf("  • %s ×%d\n", target.EntityType, target.TargetCount))
		}
		if len(targets.EntityTargets) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(targets.EntityTargets)-3))
		}
	}

	p.printBox("EXACT TARGETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulkSummary outputs the outcome of a bulk generation run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBulkSummary(result *types.BulkResult) {
	if result == nil {
		return
	}

	if result.FailureCount == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4,
			fmt.Sprintf("✅ ALL %d ITEMS SUCCEEDED", result.TotalItems))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Succeeded:  %d/%d\n", result.SuccessCount, result.TotalItems))
	sb.WriteString(fmt.Sprintf("Failed:     %d\n", result.FailureCount))
	sb.WriteString(fmt.Sprintf("Duration:   %s\n", result.ProcessingTime.Round(time.Millisecond)))
	sb.WriteString(fmt.Sprintf("Throughput: %.2f items/s\n", result.Performance.ThroughputPerSecond))

	if len(result.Errors) > 0 {
		sb.WriteString("\nFailures:\n")
		count := min(len(result.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			itemErr := result.Errors[i]
			msg := itemErr.Error
			if len(msg) > 40 {
				msg = msg[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ item %d: %s\n", itemErr.ItemIndex, msg))
		}
		if len(result.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Errors)-maxItemsToShow))
		}
	}

	p.printBox("BULK RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGeneratedContent outputs a summary of one generated draft.
func (p *Printer) PrintGeneratedContent(content *types.GeneratedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	title := content.Title
	if len(title) > 48 {
		title = title[:45] + "..."
	}
	sb.WriteString(fmt.Sprintf("Title:    %s\n", title))
	sb.WriteString(fmt.Sprintf("Words:    %d\n", content.WordCount))
	sb.WriteString(fmt.Sprintf("Density:  %.3f%%\n", content.AchievedKeywordDensity))
	sb.WriteString(fmt.Sprintf("Headings: %d\n", content.AchievedHeadingCount))
	sb.WriteString(fmt.Sprintf("Quality:  %.1f/100", content.QualityScore))

	p.printBox("GENERATED DRAFT", sb.String())
}
