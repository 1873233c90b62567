package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"target_role": "data engineer",
		"posting_urls": ["https://example.com/job"],
		"limit": 20,
		"min_score": 0.4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "data engineer", cfg.TargetRole)
	assert.Equal(t, []string{"https://example.com/job"}, cfg.PostingURLs)
	assert.Equal(t, 20, cfg.Limit)
	assert.InDelta(t, 0.4, cfg.MinScore, 0.001)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MinScoreRange(t *testing.T) {
	cfg := &Config{MinScore: 1.5}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{Limit: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestValidate_CleanupMode(t *testing.T) {
	for _, mode := range []string{"", "off", "heuristic", "model"} {
		cfg := &Config{Cleanup: mode}
		assert.NoError(t, cfg.Validate(), mode)
	}

	cfg := &Config{Cleanup: "magic"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		TargetRole: "backend developer",
		Limit:      25,
		MinScore:   0.3,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		TargetRole:     "software engineer",
		Postings:       "postings.json",
		Limit:          25,
		TimelineMonths: 3,
	}

	partial := Config{
		TargetRole: "data engineer",
		MinScore:   0.5,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "data engineer", merged.TargetRole)
	assert.InDelta(t, 0.5, merged.MinScore, 0.001)

	// Default values should fill in empty fields
	assert.Equal(t, "postings.json", merged.Postings)
	assert.Equal(t, 25, merged.Limit)
	assert.Equal(t, 3, merged.TimelineMonths)
}

func TestMergeWithDefaults_TimelineFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 6, merged.TimelineMonths)
}
