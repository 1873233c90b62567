package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/learning"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/skillgap"
)

var learningPathCmd = &cobra.Command{
	Use:   "learning-path",
	Short: "Generate a study plan for missing skills",
	Long:  "Build a month-by-month learning path, either from an explicit skill list or from the gap between a profile and a target role.",
	RunE:  runLearningPath,
}

var (
	learningResumeFlag  string
	learningProfileFlag string
	learningRoleFlag    string
	learningSkillsFlag  []string
	learningMonthsFlag  int
	learningConfigFlag  string
	learningOutFlag     string
	learningCleanupFlag string
	learningAPIKeyFlag  string
	learningVerboseFlag bool
)

func init() {
	learningPathCmd.Flags().StringVarP(&learningResumeFlag, "resume", "r", "", "Path to resume text file")
	learningPathCmd.Flags().StringVar(&learningProfileFlag, "profile", "", "Path to profile JSON file (skips resume parsing)")
	learningPathCmd.Flags().StringVar(&learningRoleFlag, "role", "", "Target role")
	learningPathCmd.Flags().StringSliceVar(&learningSkillsFlag, "skills", nil, "Skills to learn (repeatable; skips gap analysis)")
	learningPathCmd.Flags().IntVar(&learningMonthsFlag, "months", 0, "Timeline length in months (default: 6)")
	learningPathCmd.Flags().StringVarP(&learningConfigFlag, "config", "c", "", "Path to JSON config file")
	learningPathCmd.Flags().StringVarP(&learningOutFlag, "out", "o", "", "Path to output JSON file (default: stdout)")
	learningPathCmd.Flags().StringVar(&learningCleanupFlag, "cleanup", "", "Clean-up pass: off, heuristic, or model")
	learningPathCmd.Flags().StringVar(&learningAPIKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	learningPathCmd.Flags().BoolVarP(&learningVerboseFlag, "verbose", "v", false, "Print a path summary to stderr")

	rootCmd.AddCommand(learningPathCmd)
}

func runLearningPath(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(config.Config{
		Resume:         learningResumeFlag,
		TargetRole:     learningRoleFlag,
		TimelineMonths: learningMonthsFlag,
		Cleanup:        learningCleanupFlag,
		APIKey:         learningAPIKeyFlag,
	}, learningConfigFlag)
	if err != nil {
		return err
	}

	if len(learningSkillsFlag) > 0 {
		path, err := learning.GeneratePath(cfg.TargetRole, learningSkillsFlag, cfg.TimelineMonths)
		if err != nil {
			return err
		}
		if learningVerboseFlag || cfg.Verbose {
			observability.NewPrinter(os.Stderr).PrintLearningPath(path)
		}
		return writeOutput(learningOutFlag, path)
	}

	if cfg.TargetRole == "" {
		return fmt.Errorf("target role is required (use --role, --skills, or the config file)")
	}

	profile, err := loadProfile(cmd.Context(), cfg, learningProfileFlag)
	if err != nil {
		return err
	}

	report := skillgap.AnalyzeProfile(profile, cfg.TargetRole)
	path, err := learning.GenerateFromReport(report, cfg.TimelineMonths)
	if err != nil {
		return err
	}

	if learningVerboseFlag || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintLearningPath(path)
	}

	return writeOutput(learningOutFlag, path)
}
