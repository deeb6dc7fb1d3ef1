package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/marisa/content-optimizer/internal/schemas"
)

// writeJSONArtifact marshals data with indentation and writes it to path.
// When schemaFile is non-empty, the written file is validated against the
// named schema; a failed schema load only warns, a failed validation errors.
func writeJSONArtifact(path string, data any, schemaFile string) error {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if schemaFile == "" {
		return nil
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/" + schemaFile)
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	return nil
}

// readJSONFile reads path and unmarshals it into target.
func readJSONFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return nil
}
