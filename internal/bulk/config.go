package bulk

import (
	"fmt"

	"github.com/marisa/content-optimizer/internal/types"
)

// normalizeConfig fills zero values with the documented defaults and rejects
// negative or otherwise unusable settings. A nil config means all defaults.
func normalizeConfig(cfg *types.BulkConfig) (types.BulkConfig, error) {
	normalized := types.BulkConfig{}
	if cfg != nil {
		normalized = *cfg
	}

	if normalized.MaxConcurrency < 0 {
		return types.BulkConfig{}, &ConfigError{Field: "max_concurrency", Message: fmt.Sprintf("must be positive, got %d", normalized.MaxConcurrency)}
	}
	if normalized.MaxConcurrency == 0 {
		normalized.MaxConcurrency = types.DefaultMaxConcurrency
	}

	if normalized.BatchSize < 0 {
		return types.BulkConfig{}, &ConfigError{Field: "batch_size", Message: fmt.Sprintf("must be positive, got %d", normalized.BatchSize)}
	}
	if normalized.BatchSize == 0 {
		normalized.BatchSize = types.DefaultBatchSize
	}

	if normalized.RetryAttempts < 0 {
		return types.BulkConfig{}, &ConfigError{Field: "retry_attempts", Message: fmt.Sprintf("must not be negative, got %d", normalized.RetryAttempts)}
	}

	if normalized.RetryDelay < 0 {
		return types.BulkConfig{}, &ConfigError{Field: "retry_delay", Message: fmt.Sprintf("must not be negative, got %s", normalized.RetryDelay)}
	}
	if normalized.RetryDelay == 0 {
		normalized.RetryDelay = types.DefaultRetryDelay
	}

	if normalized.ItemTimeout < 0 {
		return types.BulkConfig{}, &ConfigError{Field: "item_timeout", Message: fmt.Sprintf("must be positive, got %s", normalized.ItemTimeout)}
	}
	if normalized.ItemTimeout == 0 {
		normalized.ItemTimeout = types.DefaultItemTimeout
	}

	if normalized.ProgressTracking == nil {
		enabled := true
		normalized.ProgressTracking = &enabled
	}

	return normalized, nil
}
