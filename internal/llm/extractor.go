// Package llm - extractor.go provides generic LLM-based structured output.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based structured output.
// It provides a reusable way to describe the JSON shape a task expects back.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ArticleDraft")
	Description string        // System prompt preamble describing the task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Task input:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ArticleDraftSchema returns the output schema for full article generation.
// The draft comes back as structured JSON so the title and body can be
// post-processed independently.
func ArticleDraftSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ArticleDraft",
		Description: `You are an expert SEO content writer. Your task is to write a complete, publication-ready article in markdown.
Follow the keyword density, heading, word count, and vocabulary targets given in the brief EXACTLY.
Work the target keyword into headings and body text naturally. Never stuff keywords.`,
		Fields: []SchemaField{
			{
				Name:        "title",
				Type:        "\"string\"",
				Description: "Article title containing the target keyword",
				Required:    true,
			},
			{
				Name:        "content",
				Type:        "\"string\"",
				Description: "Full article body in markdown, including all headings",
				Required:    true,
			},
			{
				Name:        "meta_description",
				Type:        "\"string\"",
				Description: "Search snippet description, 120-160 characters",
				Required:    false,
			},
		},
	}
}
