package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marisa/content-optimizer/internal/server"
)

var (
	serveAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for competitor analysis, target derivation, and bulk content generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	cfg := server.Config{
		Addr:         serveAddr,
		APIKey:       apiKey,
		SearchAPIKey: os.Getenv("GOOGLE_SEARCH_API_KEY"),
		SearchCX:     os.Getenv("GOOGLE_SEARCH_CX"),
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
