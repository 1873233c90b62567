package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a profile",
	Long:  "Score job postings against a parsed resume or a pre-built profile and print the ranked match analyses.",
	RunE:  runMatch,
}

var (
	matchResumeFlag   string
	matchProfileFlag  string
	matchPostingsFlag string
	matchURLsFlag     []string
	matchConfigFlag   string
	matchOutFlag      string
	matchLimitFlag    int
	matchMinScoreFlag float64
	matchCleanupFlag  string
	matchAPIKeyFlag   string
	matchVerboseFlag  bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFlag, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVar(&matchProfileFlag, "profile", "", "Path to profile JSON file (skips resume parsing)")
	matchCmd.Flags().StringVarP(&matchPostingsFlag, "postings", "p", "", "Path to postings JSON file")
	matchCmd.Flags().StringSliceVar(&matchURLsFlag, "url", nil, "Posting URL to fetch (repeatable)")
	matchCmd.Flags().StringVarP(&matchConfigFlag, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchOutFlag, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().IntVar(&matchLimitFlag, "limit", 0, "Maximum number of results (0 = unlimited)")
	matchCmd.Flags().Float64Var(&matchMinScoreFlag, "min-score", 0, "Minimum overall score to include (0.0-1.0)")
	matchCmd.Flags().StringVar(&matchCleanupFlag, "cleanup", "", "Clean-up pass: off, heuristic, or model")
	matchCmd.Flags().StringVar(&matchAPIKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().BoolVarP(&matchVerboseFlag, "verbose", "v", false, "Print a match summary to stderr")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(config.Config{
		Resume:      matchResumeFlag,
		Postings:    matchPostingsFlag,
		PostingURLs: matchURLsFlag,
		Limit:       matchLimitFlag,
		MinScore:    matchMinScoreFlag,
		Cleanup:     matchCleanupFlag,
		APIKey:      matchAPIKeyFlag,
	}, matchConfigFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	profile, err := loadProfile(ctx, cfg, matchProfileFlag)
	if err != nil {
		return err
	}
	postings, err := loadPostings(ctx, cfg)
	if err != nil {
		return err
	}

	opts := matching.DefaultOptions()
	opts.Limit = cfg.Limit
	opts.MinScore = cfg.MinScore

	matches, err := matching.NewEngine().Match(profile, postings, opts)
	if err != nil {
		return err
	}

	if matchVerboseFlag || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatches(matches)
	}

	return writeOutput(matchOutFlag, matches)
}
