// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Keyword      string `json:"keyword,omitempty"`       // Target keyword for a single analysis run
	KeywordsFile string `json:"keywords_file,omitempty"` // Path to newline-separated keywords for bulk runs

	// Identifiers
	UserID    string `json:"user_id,omitempty"`    // Opaque user identifier passed through to results
	ProjectID string `json:"project_id,omitempty"` // Opaque project identifier passed through to results

	// API access
	APIKey       string `json:"api_key,omitempty"`        // Gemini API key
	SearchAPIKey string `json:"search_api_key,omitempty"` // Google Custom Search API key
	SearchCX     string `json:"search_cx,omitempty"`      // Google Custom Search engine ID

	// Bulk runner overrides
	MaxConcurrency int `json:"max_concurrency,omitempty"` // Concurrent generations per run
	BatchSize      int `json:"batch_size,omitempty"`      // Items per sequential batch
	RetryAttempts  int `json:"retry_attempts,omitempty"`  // Retries after the first attempt

	// Behavior
	UseBrowser bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA sites
	SkipCache  bool   `json:"skip_cache,omitempty"`   // Bypass the fetched-page cache
	Verbose    bool   `json:"verbose,omitempty"`      // Print detailed debug information
	ListenAddr string `json:"listen_addr,omitempty"`  // Address for the HTTP server
	Audience   string `json:"audience,omitempty"`     // Default audience for generated drafts
	Tone       string `json:"tone,omitempty"`         // Default tone for generated drafts
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Keyword != "" && c.KeywordsFile != "" {
		return fmt.Errorf("config error: 'keyword' and 'keywords_file' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("config error: 'max_concurrency' must be non-negative")
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("config error: 'batch_size' must be non-negative")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("config error: 'retry_attempts' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.KeywordsFile != "" {
		if _, err := os.Stat(c.KeywordsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: keywords file not found: %s", c.KeywordsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Keyword == "" {
		result.Keyword = defaults.Keyword
	}
	if result.KeywordsFile == "" {
		result.KeywordsFile = defaults.KeywordsFile
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.ProjectID == "" {
		result.ProjectID = defaults.ProjectID
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.SearchCX == "" {
		result.SearchCX = defaults.SearchCX
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.Audience == "" {
		result.Audience = defaults.Audience
	}
	if result.Tone == "" {
		result.Tone = defaults.Tone
	}

	// Int fields: use default if zero
	if result.MaxConcurrency == 0 {
		result.MaxConcurrency = defaults.MaxConcurrency
	}
	if result.BatchSize == 0 {
		result.BatchSize = defaults.BatchSize
	}
	if result.RetryAttempts == 0 {
		result.RetryAttempts = defaults.RetryAttempts
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
