// Package steps provides step definitions and dependency validation for the
// competitor analysis pipeline.
package steps

import (
	"fmt"
	"sort"
)

// Step categories group pipeline steps for progress reporting.
const (
	CategoryDiscovery   = "discovery"
	CategoryAnalysis    = "analysis"
	CategoryAggregation = "aggregation"
	CategoryGeneration  = "generation"
)

// Step names used in progress events and dependency declarations.
const (
	StepDiscoverCompetitors = "discover_competitors"
	StepFetchPages          = "fetch_pages"
	StepAnalyzePages        = "analyze_pages"
	StepAggregateBenchmarks = "aggregate_benchmarks"
	StepDeriveTargets       = "derive_targets"
	StepGenerateContent     = "generate_content"
	StepBulkGenerate        = "bulk_generate"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	StepDiscoverCompetitors: {
		Name:         StepDiscoverCompetitors,
		Category:     CategoryDiscovery,
		Dependencies: []string{},
	},
	StepFetchPages: {
		Name:         StepFetchPages,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepDiscoverCompetitors},
	},
	StepAnalyzePages: {
		Name:         StepAnalyzePages,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepFetchPages},
	},
	StepAggregateBenchmarks: {
		Name:         StepAggregateBenchmarks,
		Category:     CategoryAggregation,
		Dependencies: []string{StepAnalyzePages},
	},
	StepDeriveTargets: {
		Name:         StepDeriveTargets,
		Category:     CategoryAggregation,
		Dependencies: []string{StepAggregateBenchmarks},
	},
	StepGenerateContent: {
		Name:         StepGenerateContent,
		Category:     CategoryGeneration,
		Dependencies: []string{StepDeriveTargets},
	},
	StepBulkGenerate: {
		Name:         StepBulkGenerate,
		Category:     CategoryGeneration,
		Dependencies: []string{},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependencies: %v", e.MissingDependencies)
}

// ValidateDependencies checks if all required dependencies for a step are in
// the completed set.
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}

	return nil
}

// GetAvailableSteps returns steps whose dependencies are met and which have
// not themselves completed, in stable name order.
func GetAvailableSteps(completed map[string]bool) []string {
	var available []string

	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if err := ValidateDependencies(completed, stepName); err != nil {
			continue
		}
		available = append(available, stepName)
	}

	sort.Strings(available)
	return available
}

// GetBlockedSteps returns steps whose dependencies are not met, in stable
// name order.
func GetBlockedSteps(completed map[string]bool) []string {
	var blocked []string

	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if err := ValidateDependencies(completed, stepName); err != nil {
			blocked = append(blocked, stepName)
		}
	}

	sort.Strings(blocked)
	return blocked
}
