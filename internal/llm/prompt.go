package llm

import (
	"fmt"
	"strings"
)

// CleanupSchema defines the structure for an LLM-based clean-up pass
// over already-extracted resume data.
type CleanupSchema struct {
	Name        string        // Schema name (e.g., "ResumeCleanup")
	Description string        // System prompt preamble describing the task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the clean-up output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "[]object"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildCleanupPrompt constructs the prompt from a schema, the structured
// extraction result, and the raw resume text it came from.
func BuildCleanupPrompt(schema CleanupSchema, structuredJSON, rawText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

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

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Keep the same overall shape as the input structure; fix values, never invent new entries.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Extracted structure:\n\"\"\"\n")
	sb.WriteString(structuredJSON)
	sb.WriteString("\n\"\"\"\n\n")

	sb.WriteString("Original resume text:\n\"\"\"\n")
	sb.WriteString(rawText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeCleanupSchema returns the clean-up schema for parsed resumes.
// The model corrects casing, merges duplicate entries, and fills fields
// that are recoverable from the raw text, without changing the shape.
func ResumeCleanupSchema() CleanupSchema {
	return CleanupSchema{
		Name: "ResumeCleanup",
		Description: `You are an expert resume reviewer. You receive a structured extraction of a resume plus the original text.
Correct extraction mistakes ONLY: fix skill name casing, merge duplicate experience entries, and fill fields that are clearly present in the original text but missing from the structure.
Never invent employers, dates, degrees, or skills that are not in the original text.`,
		Fields: []SchemaField{
			{
				Name:        "personal_info",
				Type:        "{\"name\": \"string\", \"email\": \"string\", \"phone\": \"string\", \"location\": \"string\"}",
				Description: "Contact details exactly as written in the resume",
				Required:    true,
			},
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "Professional summary verbatim, empty string if absent",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Deduplicated skill names with conventional casing",
				Required:    true,
			},
			{
				Name:        "experience",
				Type:        "[{\"title\": \"string\", \"company\": \"string\", \"description\": \"string\"}]",
				Description: "One entry per real job, pseudo-entries removed",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "[{\"degree\": \"string\", \"institution\": \"string\"}]",
				Description: "One entry per degree",
				Required:    false,
			},
		},
	}
}
