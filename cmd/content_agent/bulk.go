package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marisa/content-optimizer/internal/bulk"
	"github.com/marisa/content-optimizer/internal/generate"
	"github.com/marisa/content-optimizer/internal/llm"
	"github.com/marisa/content-optimizer/internal/observability"
	"github.com/marisa/content-optimizer/internal/types"
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Generate article drafts for many keywords in parallel",
	Long: `Run a bulk content generation job over a newline-separated keywords file. Items are processed in sequential batches with bounded concurrency, per-item retries, and per-item timeouts.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBulk,
}

var (
	bulkConfigPath     string
	bulkKeywordsFile   string
	bulkTargetsFile    string
	bulkAudience       string
	bulkTone           string
	bulkAPIKey         string
	bulkMaxConcurrency int
	bulkBatchSize      int
	bulkRetryAttempts  int
	bulkVerbose        bool
	bulkOutputFile     string
)

func init() {
	bulkCmd.Flags().StringVar(&bulkConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	bulkCmd.Flags().StringVarP(&bulkKeywordsFile, "keywords-file", "f", "", "Path to newline-separated keywords file")
	bulkCmd.Flags().StringVar(&bulkTargetsFile, "targets", "", "Path to targets JSON file applied to every item (optional)")
	bulkCmd.Flags().StringVar(&bulkAudience, "audience", "", "Audience for all drafts")
	bulkCmd.Flags().StringVar(&bulkTone, "tone", "", "Tone for all drafts")
	bulkCmd.Flags().StringVar(&bulkAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	bulkCmd.Flags().IntVar(&bulkMaxConcurrency, "max-concurrency", 0, "Concurrent generations per run (default 50)")
	bulkCmd.Flags().IntVar(&bulkBatchSize, "batch-size", 0, "Items per sequential batch (default 10)")
	bulkCmd.Flags().IntVar(&bulkRetryAttempts, "retry-attempts", 0, "Retries after the first attempt (default 3)")
	bulkCmd.Flags().BoolVarP(&bulkVerbose, "verbose", "v", false, "Print detailed debug information")
	bulkCmd.Flags().StringVarP(&bulkOutputFile, "out", "o", "", "Path to write the bulk result JSON (optional)")

	rootCmd.AddCommand(bulkCmd)
}

func runBulk(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, bulkConfigPath, bulkVerbose)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("keywords-file") {
		cfg.KeywordsFile = bulkKeywordsFile
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = bulkAPIKey
	}
	if cmd.Flags().Changed("max-concurrency") {
		cfg.MaxConcurrency = bulkMaxConcurrency
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = bulkBatchSize
	}
	if cmd.Flags().Changed("retry-attempts") {
		cfg.RetryAttempts = bulkRetryAttempts
	}
	if cmd.Flags().Changed("audience") {
		cfg.Audience = bulkAudience
	}
	if cmd.Flags().Changed("tone") {
		cfg.Tone = bulkTone
	}

	if cfg.KeywordsFile == "" {
		return fmt.Errorf("--keywords-file must be provided (via flag or config)")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	keywords, err := parseKeywordsFile(cfg.KeywordsFile)
	if err != nil {
		return err
	}
	if len(keywords) == 0 {
		return fmt.Errorf("keywords file %s holds no keywords", cfg.KeywordsFile)
	}

	var targets *types.ExactTargets
	if bulkTargetsFile != "" {
		targets = &types.ExactTargets{}
		if err := readJSONFile(bulkTargetsFile, targets); err != nil {
			return err
		}
	}

	items := make([]types.GenerationRequest, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, types.GenerationRequest{
			Keyword:   keyword,
			Audience:  cfg.Audience,
			Tone:      cfg.Tone,
			Targets:   targets,
			UserID:    cfg.UserID,
			ProjectID: cfg.ProjectID,
		})
	}

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	generator := generate.NewGenerator(client)
	runner := bulk.NewRunner(generator.Generate)

	fmt.Printf("Starting bulk run: %d keywords\n", len(items))

	result, err := runner.Process(ctx, types.BulkRequest{
		Items: items,
		Config: &types.BulkConfig{
			MaxConcurrency: cfg.MaxConcurrency,
			BatchSize:      cfg.BatchSize,
			RetryAttempts:  cfg.RetryAttempts,
		},
		UserID:    cfg.UserID,
		ProjectID: cfg.ProjectID,
	}, printBulkProgress)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintBulkSummary(result)

	if bulkOutputFile != "" {
		if err := writeJSONArtifact(bulkOutputFile, result, "bulk_result.schema.json"); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", bulkOutputFile)
	}

	if result.FailureCount > 0 {
		return fmt.Errorf("bulk run finished with %d of %d items failed", result.FailureCount, result.TotalItems)
	}
	return nil
}

// printBulkProgress writes one progress line per completed item.
func printBulkProgress(update types.ProgressUpdate) {
	fmt.Printf("Progress: %d/%d done (%d failed), batch %d/%d, %.2f items/s\n",
		update.CompletedItems, update.TotalItems, update.FailedItems,
		update.CurrentBatch, update.TotalBatches, update.ThroughputPerSecond)
}

// parseKeywordsFile reads a newline-separated keywords file, skipping blank
// lines and # comments.
func parseKeywordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file: %w", err)
	}
	defer f.Close()

	var keywords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}

	return keywords, nil
}
