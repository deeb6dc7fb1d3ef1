// Package bulk provides bounded concurrent execution of independent content
// generation jobs with batching, retry, timeout, and progress reporting.
package bulk

import (
	"fmt"
	"time"
)

// ConfigError represents a malformed bulk configuration. The whole run fails
// fast before any item is processed.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bulk config error: field %q: %s", e.Field, e.Message)
}

// TimeoutError represents a single generation attempt that exceeded the
// configured per-item timeout. It is retried like any other attempt failure.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("generation attempt timed out after %s", e.Timeout)
}
