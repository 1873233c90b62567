// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty"`   // Path to resume text file
	Postings string `json:"postings,omitempty"` // Path to job postings JSON file

	// Sources
	PostingURLs []string `json:"posting_urls,omitempty"` // URLs to fetch postings from

	// Matching
	TargetRole     string  `json:"target_role,omitempty"`     // Role for skill-gap analysis
	TimelineMonths int     `json:"timeline_months,omitempty"` // Learning path length in months
	Limit          int     `json:"limit,omitempty"`           // Maximum match results
	MinScore       float64 `json:"min_score,omitempty"`       // Minimum overall match score (0.0-1.0)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the clean-up pass
	Cleanup     string `json:"cleanup,omitempty"`      // Clean-up mode: off, heuristic, model
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ListenAddr  string `json:"listen_addr,omitempty"`  // Server bind address
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("config error: 'min_score' must be between 0.0 and 1.0")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.TimelineMonths < 0 {
		return fmt.Errorf("config error: 'timeline_months' must be non-negative")
	}

	switch c.Cleanup {
	case "", "off", "heuristic", "model":
	default:
		return fmt.Errorf("config error: 'cleanup' must be one of off, heuristic, model")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Postings != "" {
		if _, err := os.Stat(c.Postings); os.IsNotExist(err) {
			return fmt.Errorf("config error: postings file not found: %s", c.Postings)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Postings == "" {
		result.Postings = defaults.Postings
	}
	if len(result.PostingURLs) == 0 {
		result.PostingURLs = defaults.PostingURLs
	}
	if result.TargetRole == "" {
		result.TargetRole = defaults.TargetRole
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Cleanup == "" {
		result.Cleanup = defaults.Cleanup
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}

	// Int fields: use default if zero
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.TimelineMonths == 0 {
		if defaults.TimelineMonths > 0 {
			result.TimelineMonths = defaults.TimelineMonths
		} else {
			result.TimelineMonths = 6 // Default learning timeline
		}
	}

	// Float fields
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
