package bulk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisa/content-optimizer/internal/types"
)

func TestNormalizeConfig_NilUsesDefaults(t *testing.T) {
	cfg, err := normalizeConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, types.DefaultMaxConcurrency, cfg.MaxConcurrency)
	assert.Equal(t, types.DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, types.DefaultRetryDelay, cfg.RetryDelay)
	assert.Equal(t, types.DefaultItemTimeout, cfg.ItemTimeout)
	require.NotNil(t, cfg.ProgressTracking)
	assert.True(t, *cfg.ProgressTracking)
}

func TestNormalizeConfig_ZeroFieldsFilled(t *testing.T) {
	cfg, err := normalizeConfig(&types.BulkConfig{MaxConcurrency: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxConcurrency)
	assert.Equal(t, types.DefaultBatchSize, cfg.BatchSize)
}

func TestNormalizeConfig_ExplicitValuesPreserved(t *testing.T) {
	disabled := false
	cfg, err := normalizeConfig(&types.BulkConfig{
		MaxConcurrency:   7,
		BatchSize:        2,
		RetryAttempts:    1,
		RetryDelay:       50 * time.Millisecond,
		ItemTimeout:      time.Second,
		ProgressTracking: &disabled,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.MaxConcurrency)
	assert.Equal(t, 2, cfg.BatchSize)
	assert.Equal(t, 1, cfg.RetryAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, time.Second, cfg.ItemTimeout)
	assert.False(t, *cfg.ProgressTracking)
}

func TestNormalizeConfig_NegativeBatchSize(t *testing.T) {
	_, err := normalizeConfig(&types.BulkConfig{BatchSize: -1})

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "batch_size", configErr.Field)
}

func TestNormalizeConfig_NegativeMaxConcurrency(t *testing.T) {
	_, err := normalizeConfig(&types.BulkConfig{MaxConcurrency: -5})

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "max_concurrency", configErr.Field)
}

func TestNormalizeConfig_NegativeRetryDelay(t *testing.T) {
	_, err := normalizeConfig(&types.BulkConfig{RetryDelay: -time.Second})

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "retry_delay", configErr.Field)
}
