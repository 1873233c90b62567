package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/schemas"
)

// knownSchemas are the artifact schemas shipped under schemas/.
var knownSchemas = []string{
	"user_profile",
	"match_analysis",
	"skill_gap_report",
	"learning_path",
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON artifact against its schema",
	Long:  "Validate an output file (profile, match analysis, skill gap report, or learning path) against the corresponding JSON Schema.",
	RunE:  runValidate,
}

var (
	validateSchemaFlag string
	validateFileFlag   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaFlag, "schema", "s", "", fmt.Sprintf("Schema name: %s", strings.Join(knownSchemas, ", ")))
	validateCmd.Flags().StringVarP(&validateFileFlag, "file", "f", "", "Path to JSON file to validate")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateSchemaFlag == "" || validateFileFlag == "" {
		return fmt.Errorf("--schema and --file are required")
	}

	known := false
	for _, name := range knownSchemas {
		if name == validateSchemaFlag {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown schema %q (want one of: %s)", validateSchemaFlag, strings.Join(knownSchemas, ", "))
	}

	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", validateSchemaFlag+".schema.json"))
	if schemaPath == "" {
		return fmt.Errorf("schema file not found for %q", validateSchemaFlag)
	}

	if err := schemas.ValidateJSON(schemaPath, validateFileFlag); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid against %s\n", validateFileFlag, filepath.Base(schemaPath))
	return nil
}
