package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/types"
)

const sampleResumeText = `Jane Smith
jane.smith@example.com
(555) 123-4567

EXPERIENCE
Senior Engineer - Initech
January 2020 - Present
Built ingestion services handling millions of events per day.

SKILLS
Python, SQL, Docker
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMergeConfig_FlagsWinOverFile(t *testing.T) {
	configPath := writeTempFile(t, "config.json", `{
		"target_role": "data engineer",
		"cleanup": "heuristic",
		"timeline_months": 12
	}`)

	merged, err := mergeConfig(config.Config{TargetRole: "backend developer"}, configPath)
	require.NoError(t, err)

	assert.Equal(t, "backend developer", merged.TargetRole, "flag value should win")
	assert.Equal(t, "heuristic", merged.Cleanup, "file value fills the gap")
	assert.Equal(t, 12, merged.TimelineMonths)
}

func TestMergeConfig_DefaultTimeline(t *testing.T) {
	merged, err := mergeConfig(config.Config{}, "")
	require.NoError(t, err)

	assert.Equal(t, 6, merged.TimelineMonths)
}

func TestMergeConfig_InvalidCleanup(t *testing.T) {
	_, err := mergeConfig(config.Config{Cleanup: "llm"}, "")
	assert.Error(t, err)
}

func TestMergeConfig_MissingConfigFile(t *testing.T) {
	_, err := mergeConfig(config.Config{}, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseResumeFile_FullPipeline(t *testing.T) {
	resumePath := writeTempFile(t, "resume.txt", sampleResumeText)

	parsed, err := parseResumeFile(context.Background(), config.Config{Resume: resumePath})
	require.NoError(t, err)

	require.NotNil(t, parsed.Profile)
	assert.Equal(t, "Jane Smith", parsed.Profile.PersonalInfo.Name)
	assert.True(t, parsed.Profile.HasSkill("Python"))
	require.NotNil(t, parsed.Data)
	assert.NotZero(t, parsed.Data.ConfidenceScore)
}

func TestParseResumeFile_MissingResume(t *testing.T) {
	_, err := parseResumeFile(context.Background(), config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file is required")
}

func TestLoadProfile_FromJSONFile(t *testing.T) {
	profile := types.UserProfile{
		PersonalInfo: types.PersonalInfo{Name: "Jane Smith"},
		Skills:       []types.Skill{{Name: "Go", Level: 4}},
	}
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	profilePath := writeTempFile(t, "profile.json", string(data))

	loaded, err := loadProfile(context.Background(), config.Config{}, profilePath)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", loaded.PersonalInfo.Name)
	assert.True(t, loaded.HasSkill("Go"))
}

func TestLoadPostings_FromFile(t *testing.T) {
	postingsPath := writeTempFile(t, "postings.json", `[
		{"title": "Data Engineer", "company": "Acme", "requirements": ["python", "sql"]},
		{"title": "", "company": "Broken"}
	]`)

	postings, err := loadPostings(context.Background(), config.Config{Postings: postingsPath})
	require.NoError(t, err)

	require.Len(t, postings, 1, "invalid posting should be skipped")
	assert.Equal(t, "Acme", postings[0].Company)
}

func TestLoadPostings_NoneGiven(t *testing.T) {
	_, err := loadPostings(context.Background(), config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no postings")
}

func TestWriteOutput_ToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutput(outPath, map[string]int{"value": 42}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 42, decoded["value"])
}

func TestResolveAPIKey_PrefersConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	assert.Equal(t, "cfg-key", resolveAPIKey(config.Config{APIKey: "cfg-key"}))
	assert.Equal(t, "env-key", resolveAPIKey(config.Config{}))
}
