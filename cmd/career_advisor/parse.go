package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume text file into a structured profile",
	Long:  "Parse raw resume text into a structured UserProfile JSON, including the intermediate extraction with its confidence score.",
	RunE:  runParse,
}

var (
	parseResumeFlag  string
	parseConfigFlag  string
	parseOutFlag     string
	parseCleanupFlag string
	parseAPIKeyFlag  string
	parseVerboseFlag bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseResumeFlag, "resume", "r", "", "Path to resume text file")
	parseCmd.Flags().StringVarP(&parseConfigFlag, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVarP(&parseOutFlag, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseCleanupFlag, "cleanup", "", "Clean-up pass: off, heuristic, or model")
	parseCmd.Flags().StringVar(&parseAPIKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().BoolVarP(&parseVerboseFlag, "verbose", "v", false, "Print a parse summary to stderr")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(config.Config{
		Resume:  parseResumeFlag,
		Cleanup: parseCleanupFlag,
		APIKey:  parseAPIKeyFlag,
	}, parseConfigFlag)
	if err != nil {
		return err
	}

	parsed, err := parseResumeFile(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if parseVerboseFlag || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintProfile(parsed.Profile, parsed.Data)
	}

	return writeOutput(parseOutFlag, parsed)
}
