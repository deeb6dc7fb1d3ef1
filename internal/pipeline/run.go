// Package pipeline provides the high-level orchestration for the competitor
// analysis process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/marisa/content-optimizer/internal/analyze"
	"github.com/marisa/content-optimizer/internal/benchmark"
	"github.com/marisa/content-optimizer/internal/fetch"
	"github.com/marisa/content-optimizer/internal/generate"
	"github.com/marisa/content-optimizer/internal/llm"
	"github.com/marisa/content-optimizer/internal/observability"
	"github.com/marisa/content-optimizer/internal/pipeline/steps"
	"github.com/marisa/content-optimizer/internal/serp"
	"github.com/marisa/content-optimizer/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the analysis pipeline
type RunOptions struct {
	Keyword        string
	CompetitorURLs []string // Optional: skip SERP discovery and analyze these
	SearchAPIKey   string
	SearchCX       string
	APIKey         string // Gemini API key, needed only when generating a draft
	Audience       string
	Tone           string
	UseBrowser     bool
	SkipCache      bool
	Verbose        bool
	OnProgress     ProgressCallback
}

// AnalysisResult holds the outputs of one full analysis run.
type AnalysisResult struct {
	Keyword     string                   `json:"keyword"`
	Competitors []types.CompetitorRecord `json:"competitors"`
	Benchmarks  *types.PreciseBenchmarks `json:"benchmarks"`
	Targets     *types.ExactTargets      `json:"targets"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// RunAnalysis orchestrates the full competitor analysis pipeline: discovery,
// parallel fetch and analysis of the competitor sample, statistical
// aggregation, and target derivation.
func RunAnalysis(ctx context.Context, opts RunOptions) (*AnalysisResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	// Step 1: Discover the competitor sample
	urls := opts.CompetitorURLs
	if len(urls) == 0 {
		fmt.Printf("Step 1/4: Discovering top competitors for %q...\n", opts.Keyword)
		searcher, err := serp.NewSearcher(ctx, opts.SearchAPIKey, opts.SearchCX)
		if err != nil {
			return nil, fmt.Errorf("initializing search failed: %w", err)
		}
		urls, err = searcher.TopCompetitors(ctx, opts.Keyword)
		if err != nil {
			return nil, fmt.Errorf("competitor discovery failed: %w", err)
		}
	} else {
		fmt.Printf("Step 1/4: Using %d provided competitor URLs...\n", len(urls))
		if len(urls) != types.SampleSize {
			return nil, fmt.Errorf("expected %d competitor URLs, got %d", types.SampleSize, len(urls))
		}
	}
	emitProgress(&opts, steps.StepDiscoverCompetitors, steps.CategoryDiscovery,
		fmt.Sprintf("Discovered %d competitors for %q", len(urls), opts.Keyword), urls)

	// Step 2: Fetch and analyze all competitor pages in parallel
	fmt.Printf("Step 2/4: Fetching and analyzing %d competitor pages...\n", len(urls))

	fetcher := fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{
		SkipCache: opts.SkipCache,
	})

	records := make([]types.CompetitorRecord, len(urls))
	var mu sync.Mutex // Protect record assignments

	g, gCtx := errgroup.WithContext(ctx)
	for i, pageURL := range urls {
		i, pageURL := i, pageURL
		g.Go(func() error {
			record, err := analyzeCompetitor(gCtx, fetcher, pageURL, opts)
			if err != nil {
				return fmt.Errorf("analyzing competitor %s failed: %w", pageURL, err)
			}
			mu.Lock()
			records[i] = *record
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if opts.Verbose {
		printer.PrintCompetitors(records)
	}
	emitProgress(&opts, steps.StepAnalyzePages, steps.CategoryAnalysis,
		fmt.Sprintf("Analyzed %d competitor pages", len(records)), nil)

	// Step 3: Aggregate statistical benchmarks
	fmt.Printf("Step 3/4: Calculating precise benchmarks...\n")
	benchmarks, err := benchmark.NewAggregator().CalculateBenchmarks(records)
	if err != nil {
		return nil, fmt.Errorf("calculating benchmarks failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintBenchmarks(benchmarks)
	}
	emitProgress(&opts, steps.StepAggregateBenchmarks, steps.CategoryAggregation,
		fmt.Sprintf("Aggregated benchmarks across %d competitors", len(records)), benchmarks)

	// Step 4: Derive exact optimization targets
	fmt.Printf("Step 4/4: Deriving exact targets...\n")
	targets := benchmark.DeriveTargets(benchmarks)
	if opts.Verbose {
		printer.PrintTargets(targets)
	}
	emitProgress(&opts, steps.StepDeriveTargets, steps.CategoryAggregation,
		fmt.Sprintf("Derived targets: %d words at %.3f%% density", targets.TargetWordCount, targets.TargetKeywordDensity), targets)

	fmt.Printf("✅ Analysis complete.\n")

	return &AnalysisResult{
		Keyword:     opts.Keyword,
		Competitors: records,
		Benchmarks:  benchmarks,
		Targets:     targets,
	}, nil
}

// RunGeneration runs the full analysis pipeline and then generates one
// article draft against the derived targets.
func RunGeneration(ctx context.Context, opts RunOptions) (*AnalysisResult, *types.GeneratedContent, error) {
	analysis, err := RunAnalysis(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("Generating draft for %q...\n", opts.Keyword)
	client, err := llm.NewClient(ctx, nil, opts.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing generation client failed: %w", err)
	}
	defer client.Close()

	content, err := generate.NewGenerator(client).Generate(ctx, types.GenerationRequest{
		Keyword:  opts.Keyword,
		Audience: opts.Audience,
		Tone:     opts.Tone,
		Targets:  analysis.Targets,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("generation failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintGeneratedContent(content)
	}
	emitProgress(&opts, steps.StepGenerateContent, steps.CategoryGeneration,
		fmt.Sprintf("Generated %d-word draft scoring %.1f/100", content.WordCount, content.QualityScore), content)

	fmt.Printf("✅ Draft complete.\n")

	return analysis, content, nil
}

// analyzeCompetitor fetches one competitor page and builds its record,
// falling back to a headless browser when static HTML yields too little
// content on JS-heavy pages.
func analyzeCompetitor(ctx context.Context, fetcher *fetch.CachedFetcher, pageURL string, opts RunOptions) (*types.CompetitorRecord, error) {
	result, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	if opts.UseBrowser && fetch.ShouldUseBrowser(result.Text) {
		if opts.Verbose {
			fmt.Printf("[VERBOSE] Static fetch of %s too thin, retrying with browser...\n", pageURL)
		}
		rendered, berr := fetch.BrowserSimple(ctx, pageURL, opts.Verbose)
		if berr != nil {
			fmt.Printf("Warning: Browser fetch of %s failed: %v. Using static HTML.\n", pageURL, berr)
		} else {
			html = rendered
		}
	}

	return analyze.BuildCompetitorRecord(html, pageURL, opts.Keyword)
}
