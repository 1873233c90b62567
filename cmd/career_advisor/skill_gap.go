package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/skillgap"
)

var skillGapCmd = &cobra.Command{
	Use:   "skill-gap",
	Short: "Compare a profile against a target role",
	Long:  "Report which skills required for a target role the profile already has, which are missing, and how ready the candidate is.",
	RunE:  runSkillGap,
}

var (
	skillGapResumeFlag  string
	skillGapProfileFlag string
	skillGapRoleFlag    string
	skillGapConfigFlag  string
	skillGapOutFlag     string
	skillGapCleanupFlag string
	skillGapAPIKeyFlag  string
	skillGapVerboseFlag bool
)

func init() {
	skillGapCmd.Flags().StringVarP(&skillGapResumeFlag, "resume", "r", "", "Path to resume text file")
	skillGapCmd.Flags().StringVar(&skillGapProfileFlag, "profile", "", "Path to profile JSON file (skips resume parsing)")
	skillGapCmd.Flags().StringVar(&skillGapRoleFlag, "role", "", "Target role to analyze against")
	skillGapCmd.Flags().StringVarP(&skillGapConfigFlag, "config", "c", "", "Path to JSON config file")
	skillGapCmd.Flags().StringVarP(&skillGapOutFlag, "out", "o", "", "Path to output JSON file (default: stdout)")
	skillGapCmd.Flags().StringVar(&skillGapCleanupFlag, "cleanup", "", "Clean-up pass: off, heuristic, or model")
	skillGapCmd.Flags().StringVar(&skillGapAPIKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	skillGapCmd.Flags().BoolVarP(&skillGapVerboseFlag, "verbose", "v", false, "Print a gap summary to stderr")

	rootCmd.AddCommand(skillGapCmd)
}

func runSkillGap(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(config.Config{
		Resume:     skillGapResumeFlag,
		TargetRole: skillGapRoleFlag,
		Cleanup:    skillGapCleanupFlag,
		APIKey:     skillGapAPIKeyFlag,
	}, skillGapConfigFlag)
	if err != nil {
		return err
	}
	if cfg.TargetRole == "" {
		return fmt.Errorf("target role is required (use --role or the config file)")
	}

	profile, err := loadProfile(cmd.Context(), cfg, skillGapProfileFlag)
	if err != nil {
		return err
	}

	report := skillgap.AnalyzeProfile(profile, cfg.TargetRole)

	if skillGapVerboseFlag || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintSkillGapReport(report)
	}

	return writeOutput(skillGapOutFlag, report)
}
