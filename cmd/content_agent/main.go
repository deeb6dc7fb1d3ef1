// Package main provides the entry point for the Content Optimizer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "content_agent",
	Short: "Competitor content benchmarking and bulk draft generation",
	Long:  "Content Optimizer analyzes the top-ranking competitor pages for a keyword, derives precise statistical benchmarks and optimization targets, and generates article drafts against those targets, one at a time or in bulk.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
