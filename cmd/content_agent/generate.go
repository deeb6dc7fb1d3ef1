package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marisa/content-optimizer/internal/config"
	"github.com/marisa/content-optimizer/internal/generate"
	"github.com/marisa/content-optimizer/internal/llm"
	"github.com/marisa/content-optimizer/internal/observability"
	"github.com/marisa/content-optimizer/internal/pipeline"
	"github.com/marisa/content-optimizer/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one article draft against optimization targets",
	Long: `Generate a single article draft for a keyword. With --targets, the draft is driven by a previously derived targets JSON file; without it, the full analysis pipeline runs first and the freshly derived targets are used.`,
	RunE: runGenerate,
}

var (
	generateKeyword     string
	generateTargetsFile string
	generateAudience    string
	generateTone        string
	generateAPIKey      string
	generateUseBrowser  bool
	generateVerbose     bool
	generateOutputFile  string
)

func init() {
	generateCmd.Flags().StringVarP(&generateKeyword, "keyword", "k", "", "Target keyword (required)")
	generateCmd.Flags().StringVar(&generateTargetsFile, "targets", "", "Path to targets JSON file (optional, otherwise derived by running the analysis pipeline)")
	generateCmd.Flags().StringVar(&generateAudience, "audience", "", "Audience for the draft")
	generateCmd.Flags().StringVar(&generateTone, "tone", "", "Tone for the draft")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().BoolVar(&generateUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to write the generated content JSON (optional)")
	_ = generateCmd.MarkFlagRequired("keyword")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := generateAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	var content *types.GeneratedContent
	if generateTargetsFile != "" {
		var targets types.ExactTargets
		if err := readJSONFile(generateTargetsFile, &targets); err != nil {
			return err
		}

		client, err := llm.NewClient(ctx, nil, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()

		content, err = generate.NewGenerator(client).Generate(ctx, types.GenerationRequest{
			Keyword:  generateKeyword,
			Audience: generateAudience,
			Tone:     generateTone,
			Targets:  &targets,
		})
		if err != nil {
			return err
		}
		if generateVerbose {
			observability.NewPrinter(os.Stdout).PrintGeneratedContent(content)
		}
	} else {
		var cfg config.Config
		if err := resolveSearchKeys(&cfg); err != nil {
			return err
		}

		var err error
		_, content, err = pipeline.RunGeneration(ctx, pipeline.RunOptions{
			Keyword:      generateKeyword,
			SearchAPIKey: cfg.SearchAPIKey,
			SearchCX:     cfg.SearchCX,
			APIKey:       apiKey,
			Audience:     generateAudience,
			Tone:         generateTone,
			UseBrowser:   generateUseBrowser,
			Verbose:      generateVerbose,
		})
		if err != nil {
			return err
		}
	}

	if generateOutputFile != "" {
		if err := writeJSONArtifact(generateOutputFile, content, "generated_content.schema.json"); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", generateOutputFile)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully generated %d-word draft (quality %.1f/100)\n",
		content.WordCount, content.QualityScore)

	return nil
}
