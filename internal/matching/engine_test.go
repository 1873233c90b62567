package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

func fixedEngine() *Engine {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return NewEngineAt(func() time.Time { return now })
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	bad := DefaultOptions()
	bad.MinScore = 1.5
	err := bad.Validate()
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	unbalanced := DefaultOptions()
	unbalanced.Weights.Skills = 0.9
	assert.Error(t, unbalanced.Validate())

	negative := DefaultOptions()
	negative.Limit = -1
	assert.Error(t, negative.Validate())
}

func TestMatch_InvalidOptionsRejectedBeforeScoring(t *testing.T) {
	opts := DefaultOptions()
	opts.MinScore = -0.1

	_, err := fixedEngine().Match(profileWithSkills("python"), nil, opts)
	assert.Error(t, err)
}

func TestMatch_ScoreBounds(t *testing.T) {
	profile := profileWithSkills("python", "sql", "aws")
	profile.Preferences = types.CareerPreferences{SalaryMin: 100000, SalaryMax: 140000, DesiredLocation: "Portland, OR", Remote: types.RemoteFlexible}

	postings := []types.JobPosting{
		{Title: "Engineer", Company: "Acme", Requirements: []string{"python", "sql"}, Remote: true, SalaryMin: 90000, SalaryMax: 150000, ExperienceLevel: types.LevelEntry},
		{Title: "Director", Company: "Initech", Requirements: []string{"leadership"}, Location: "Tokyo", ExperienceLevel: types.LevelExecutive},
		{Title: "Analyst", Company: "Globex"},
	}

	results, err := fixedEngine().Match(profile, postings, DefaultOptions())
	require.NoError(t, err)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.OverallScore, 0.0)
		assert.LessOrEqual(t, r.OverallScore, 1.0)
		for _, s := range []float64{r.SubScores.Skills, r.SubScores.Experience, r.SubScores.Location, r.SubScores.Salary} {
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestMatch_SortedDescendingWithTieBreaks(t *testing.T) {
	profile := profileWithSkills("python")
	earlier := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	// Zeta and Alpha tie on every sub-score; Zeta is posted later and
	// must rank first. Beta ties with Alpha on score and date, so the
	// company name decides.
	postings := []types.JobPosting{
		{Title: "Engineer", Company: "Alpha", Requirements: []string{"python"}, PostedDate: &earlier},
		{Title: "Engineer", Company: "Zeta", Requirements: []string{"python"}, PostedDate: &later},
		{Title: "Engineer", Company: "Beta", Requirements: []string{"python"}, PostedDate: &earlier},
		{Title: "Engineer", Company: "Nomatch", Requirements: []string{"rust", "c++"}, PostedDate: &later},
	}

	results, err := fixedEngine().Match(profile, postings, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "Zeta", results[0].Posting.Company)
	assert.Equal(t, "Alpha", results[1].Posting.Company)
	assert.Equal(t, "Beta", results[2].Posting.Company)
	assert.Equal(t, "Nomatch", results[3].Posting.Company)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].OverallScore, results[i].OverallScore)
	}
}

func TestMatch_MinScoreAndLimit(t *testing.T) {
	profile := profileWithSkills("python")
	postings := []types.JobPosting{
		{Title: "Engineer", Company: "Acme", Requirements: []string{"python"}},
		{Title: "Engineer", Company: "Initech", Requirements: []string{"rust"}},
	}

	opts := DefaultOptions()
	opts.MinScore = 0.6
	results, err := fixedEngine().Match(profile, postings, opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Acme", results[0].Posting.Company)

	opts = DefaultOptions()
	opts.Limit = 1
	results, err = fixedEngine().Match(profile, postings, opts)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestMatch_NoPostings(t *testing.T) {
	results, err := fixedEngine().Match(profileWithSkills("python"), nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAnalyze_SkillGapScenario(t *testing.T) {
	profile := profileWithSkills("python", "sql")
	posting := types.JobPosting{Title: "Engineer", Company: "Acme", Requirements: []string{"python", "django", "sql"}}

	analysis := fixedEngine().Analyze(profile, posting, DefaultWeights())
	assert.InDelta(t, 2.0/3.0, analysis.SubScores.Skills, 0.001)
	assert.Equal(t, []string{"django"}, analysis.SkillGaps)
	assert.NotEmpty(t, analysis.Reasons)
}

func TestAnalyze_DoesNotMutateInputs(t *testing.T) {
	profile := profileWithSkills("python")
	posting := types.JobPosting{Title: "Engineer", Company: "Acme", Requirements: []string{"python", "go"}}

	before := len(profile.Skills)
	_ = fixedEngine().Analyze(profile, posting, DefaultWeights())
	assert.Len(t, profile.Skills, before)
	assert.Equal(t, []string{"python", "go"}, posting.Requirements)
}
