// Package main provides the career advisor CLI and HTTP API entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_advisor",
	Short: "Career advisory toolkit",
	Long:  "Career advisor parses raw resume text into a structured profile, ranks job postings against it, analyzes skill gaps for a target role, and generates learning paths.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
