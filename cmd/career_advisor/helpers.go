package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/cleanup"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/jobsource"
	"github.com/jonathan/career-advisor/internal/parsing"
	"github.com/jonathan/career-advisor/internal/types"
)

// mergeConfig overlays flag values on top of an optional config file
// and validates the result. Flags win over file values.
func mergeConfig(flags config.Config, configPath string) (config.Config, error) {
	defaults := config.Config{}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		defaults = *fileCfg
	}

	merged := flags.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// resolveAPIKey prefers the configured key over the environment.
func resolveAPIKey(cfg config.Config) string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// parsedResume is the output of the parse pipeline: the adapted profile
// plus the extraction it came from.
type parsedResume struct {
	Profile *types.UserProfile `json:"profile"`
	Data    *types.ResumeData  `json:"data"`
}

// parseResumeFile runs the full pipeline over a resume text file,
// applying the configured clean-up pass between extraction and
// normalization.
func parseResumeFile(ctx context.Context, cfg config.Config) (*parsedResume, error) {
	if cfg.Resume == "" {
		return nil, fmt.Errorf("resume file is required (use --resume or the config file)")
	}

	raw, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	cleaner, err := cleanup.ForMode(ctx, cfg.Cleanup, resolveAPIKey(cfg))
	if err != nil {
		return nil, err
	}

	data := parsing.Extract(string(raw))
	if cleaned, cErr := cleaner.Clean(ctx, data); cErr == nil {
		data = cleaned
	}
	data = parsing.Normalize(data)
	profile := parsing.BuildProfile(data, types.CareerPreferences{})

	return &parsedResume{Profile: profile, Data: data}, nil
}

// loadProfile returns the profile to advise on: a pre-built profile
// JSON when given, the parsed resume otherwise.
func loadProfile(ctx context.Context, cfg config.Config, profilePath string) (*types.UserProfile, error) {
	if profilePath != "" {
		data, err := os.ReadFile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file: %w", err)
		}
		var profile types.UserProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
		}
		return &profile, nil
	}

	parsed, err := parseResumeFile(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return parsed.Profile, nil
}

// loadPostings gathers postings from the configured file and URLs.
func loadPostings(ctx context.Context, cfg config.Config) ([]types.JobPosting, error) {
	var postings []types.JobPosting

	if cfg.Postings != "" {
		source := &jobsource.FileSource{Path: cfg.Postings}
		fromFile, err := source.Postings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load postings file: %w", err)
		}
		postings = append(postings, fromFile...)
	}

	if len(cfg.PostingURLs) > 0 {
		source := &jobsource.URLSource{URLs: cfg.PostingURLs, UseBrowser: cfg.UseBrowser}
		fetched, err := source.Postings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch postings: %w", err)
		}
		postings = append(postings, fetched...)
	}

	if len(postings) == 0 {
		return nil, fmt.Errorf("no postings given (use --postings or --url)")
	}
	return postings, nil
}

// writeOutput writes v as indented JSON to path, or to stdout when path
// is empty.
func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
