package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marisa/content-optimizer/internal/config"
	"github.com/marisa/content-optimizer/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full competitor analysis pipeline for one keyword",
	Long: `Discovers the top-ranking competitor pages for a keyword, fetches and analyzes them, aggregates precise statistical benchmarks, and derives exact optimization targets.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath   string
	analyzeKeyword      string
	analyzeSearchAPIKey string
	analyzeSearchCX     string
	analyzeUseBrowser   bool
	analyzeSkipCache    bool
	analyzeVerbose      bool
	analyzeOutputFile   string
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeKeyword, "keyword", "k", "", "Target keyword to analyze")
	analyzeCmd.Flags().StringVar(&analyzeSearchAPIKey, "search-api-key", "", "Google Custom Search API key (defaults to GOOGLE_SEARCH_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeSearchCX, "search-cx", "", "Google Custom Search engine ID (defaults to GOOGLE_SEARCH_CX env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCmd.Flags().BoolVar(&analyzeSkipCache, "skip-cache", false, "Bypass the fetched-page cache")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to write the analysis result JSON (optional)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, analyzeConfigPath, analyzeVerbose)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("keyword") {
		cfg.Keyword = analyzeKeyword
	}
	if cmd.Flags().Changed("search-api-key") {
		cfg.SearchAPIKey = analyzeSearchAPIKey
	}
	if cmd.Flags().Changed("search-cx") {
		cfg.SearchCX = analyzeSearchCX
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("skip-cache") {
		cfg.SkipCache = analyzeSkipCache
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	if cfg.Keyword == "" {
		return fmt.Errorf("--keyword must be provided (via flag or config)")
	}
	if err := resolveSearchKeys(&cfg); err != nil {
		return err
	}

	result, err := pipeline.RunAnalysis(context.Background(), pipeline.RunOptions{
		Keyword:      cfg.Keyword,
		SearchAPIKey: cfg.SearchAPIKey,
		SearchCX:     cfg.SearchCX,
		UseBrowser:   cfg.UseBrowser,
		SkipCache:    cfg.SkipCache,
		Verbose:      cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if analyzeOutputFile != "" {
		if err := writeJSONArtifact(analyzeOutputFile, result, ""); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)
	}

	return nil
}

// loadMergedConfig loads and validates the optional JSON config file.
func loadMergedConfig(_ *cobra.Command, configPath string, verbose bool) (config.Config, error) {
	var cfg config.Config
	if configPath == "" {
		return cfg, nil
	}

	loadedCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loadedCfg.Validate(); err != nil {
		return cfg, err
	}

	cfg = *loadedCfg
	if verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", configPath)
	}
	return cfg, nil
}

// resolveSearchKeys fills the search credentials from the environment and
// errors when they are still missing.
func resolveSearchKeys(cfg *config.Config) error {
	if cfg.SearchAPIKey == "" {
		cfg.SearchAPIKey = os.Getenv("GOOGLE_SEARCH_API_KEY")
	}
	if cfg.SearchCX == "" {
		cfg.SearchCX = os.Getenv("GOOGLE_SEARCH_CX")
	}
	if cfg.SearchAPIKey == "" || cfg.SearchCX == "" {
		return fmt.Errorf("GOOGLE_SEARCH_API_KEY and GOOGLE_SEARCH_CX environment variables (or the matching flags) are required")
	}
	return nil
}
