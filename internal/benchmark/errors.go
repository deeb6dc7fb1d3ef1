// Package benchmark provides statistical aggregation of competitor SEO metrics
// into precise benchmarks and derived optimization targets.
package benchmark

import "fmt"

// ValidationError represents an invalid competitor sample. It is raised
// synchronously before any computation and never retried.
type ValidationError struct {
	// Competitor is the 1-based ordinal of the offending record,
	// 0 when the violation is not record-specific (e.g. wrong sample size).
	Competitor int
	Field      string
	Message    string
}

func (e *ValidationError) Error() string {
	if e.Competitor > 0 {
		return fmt.Sprintf("competitor validation error: competitor %d: field %q: %s", e.Competitor, e.Field, e.Message)
	}
	return fmt.Sprintf("competitor validation error: %s", e.Message)
}
