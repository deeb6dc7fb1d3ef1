// Package types provides type definitions for structured data used throughout the content-optimizer system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// BenchmarkAPIRequest represents the request body for the /benchmarks endpoint.
type BenchmarkAPIRequest struct {
	Keyword     string             `json:"keyword" validate:"required,min=1"`
	Competitors []CompetitorRecord `json:"competitors" validate:"required"`
}

// TargetsAPIRequest represents the request body for the /targets endpoint.
type TargetsAPIRequest struct {
	Benchmarks *PreciseBenchmarks `json:"benchmarks" validate:"required"`
}

// BulkAPIRequest represents the request body for the /bulk endpoint.
type BulkAPIRequest struct {
	Items     []GenerationRequest `json:"items" validate:"required,dive"`
	Config    *BulkConfig         `json:"config,omitempty"`
	UserID    string              `json:"user_id,omitempty"`
	ProjectID string              `json:"project_id,omitempty"`
}

// Validate validates the BenchmarkAPIRequest using the validator.
func (r *BenchmarkAPIRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TargetsAPIRequest using the validator.
func (r *TargetsAPIRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BulkAPIRequest using the validator.
func (r *BulkAPIRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
