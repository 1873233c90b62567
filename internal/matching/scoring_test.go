package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-advisor/internal/types"
)

func profileWithSkills(names ...string) *types.UserProfile {
	p := &types.UserProfile{}
	for _, n := range names {
		p.Skills = append(p.Skills, types.Skill{Name: n, Level: types.DefaultSkillLevel})
	}
	return p
}

func TestComputeSkillScore_PartialOverlap(t *testing.T) {
	profile := profileWithSkills("python", "sql")
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", Requirements: []string{"python", "django", "sql"}}

	score, matched, missing := computeSkillScore(profile, posting)
	assert.InDelta(t, 2.0/3.0, score, 0.001)
	assert.ElementsMatch(t, []string{"python", "SQL"}, matched)
	assert.Equal(t, []string{"django"}, missing)
}

func TestComputeSkillScore_NoRequirements(t *testing.T) {
	profile := profileWithSkills("python")
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme"}

	score, matched, missing := computeSkillScore(profile, posting)
	assert.Zero(t, score)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

func TestComputeSkillScore_CaseInsensitive(t *testing.T) {
	profile := profileWithSkills("Python", "AWS")
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", Requirements: []string{"PYTHON", "aws"}}

	score, _, _ := computeSkillScore(profile, posting)
	assert.InDelta(t, 1.0, score, 0.001)
}

func TestComputeSkillScore_Monotonicity(t *testing.T) {
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", Requirements: []string{"python", "django", "sql", "redis"}}

	smaller := profileWithSkills("python")
	larger := profileWithSkills("python", "sql")

	s1, _, _ := computeSkillScore(smaller, posting)
	s2, _, _ := computeSkillScore(larger, posting)
	assert.GreaterOrEqual(t, s2, s1)
}

func TestInferSeniority_Ladder(t *testing.T) {
	assert.Equal(t, types.LevelEntry, InferSeniority(0.5))
	assert.Equal(t, types.LevelJunior, InferSeniority(2))
	assert.Equal(t, types.LevelMid, InferSeniority(4))
	assert.Equal(t, types.LevelSenior, InferSeniority(6))
	assert.Equal(t, types.LevelLead, InferSeniority(12))
}

func experienceYears(years float64, now time.Time) []types.WorkExperience {
	start := now.Add(-time.Duration(years * 24 * 365.25 * float64(time.Hour)))
	return []types.WorkExperience{{Title: "Engineer", Company: "Acme", StartDate: &start, Current: true}}
}

func TestComputeExperienceScore_ExactMatch(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := &types.UserProfile{Experience: experienceYears(4, now)}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", ExperienceLevel: types.LevelMid}

	assert.InDelta(t, 1.0, computeExperienceScore(profile, posting, now), 0.001)
}

func TestComputeExperienceScore_Overqualified(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := &types.UserProfile{Experience: experienceYears(10, now)}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", ExperienceLevel: types.LevelEntry}

	assert.InDelta(t, overqualifiedScore, computeExperienceScore(profile, posting, now), 0.001)
}

func TestComputeExperienceScore_UnderqualifiedPenalty(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := &types.UserProfile{Experience: experienceYears(2, now)}

	oneLevel := &types.JobPosting{Title: "Engineer", Company: "Acme", ExperienceLevel: types.LevelMid}
	assert.InDelta(t, 0.7, computeExperienceScore(profile, oneLevel, now), 0.001)

	twoLevels := &types.JobPosting{Title: "Engineer", Company: "Acme", ExperienceLevel: types.LevelSenior}
	assert.InDelta(t, 0.4, computeExperienceScore(profile, twoLevels, now), 0.001)
}

func TestComputeExperienceScore_FloorAtZero(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := &types.UserProfile{}
	posting := &types.JobPosting{Title: "CTO", Company: "Acme", ExperienceLevel: types.LevelExecutive}

	assert.Zero(t, computeExperienceScore(profile, posting, now))
}

func TestComputeExperienceScore_NoStatedLevel(t *testing.T) {
	now := time.Now()
	profile := &types.UserProfile{}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme"}

	assert.InDelta(t, neutralScore, computeExperienceScore(profile, posting, now), 0.001)
}

func TestComputeLocationScore_RemoteMatch(t *testing.T) {
	profile := &types.UserProfile{Preferences: types.CareerPreferences{Remote: types.RemoteOnly}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", Remote: true, Location: "New York, NY"}

	assert.InDelta(t, 1.0, computeLocationScore(profile, posting), 0.001)
}

func TestComputeLocationScore_OnsitePreferenceIgnoresRemoteFlag(t *testing.T) {
	profile := &types.UserProfile{Preferences: types.CareerPreferences{
		Remote:          types.RemoteOnsite,
		DesiredLocation: "Portland, OR",
	}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", Remote: true, Location: "New York, NY"}

	assert.Zero(t, computeLocationScore(profile, posting))
}

func TestComputeLocationScore_SubstringMatch(t *testing.T) {
	profile := &types.UserProfile{Preferences: types.CareerPreferences{DesiredLocation: "portland"}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", Location: "Portland, OR"}

	assert.InDelta(t, 1.0, computeLocationScore(profile, posting), 0.001)
}

func TestComputeLocationScore_SameRegionPartial(t *testing.T) {
	profile := &types.UserProfile{Preferences: types.CareerPreferences{DesiredLocation: "Portland, OR"}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", Location: "Bend, OR"}

	assert.InDelta(t, 0.5, computeLocationScore(profile, posting), 0.001)
}

func TestComputeLocationScore_NoPreferenceNeutral(t *testing.T) {
	profile := &types.UserProfile{}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", Location: "New York, NY"}

	assert.InDelta(t, neutralScore, computeLocationScore(profile, posting), 0.001)
}

func TestComputeSalaryScore_FullContainment(t *testing.T) {
	profile := &types.UserProfile{Preferences: types.CareerPreferences{SalaryMin: 100000, SalaryMax: 120000}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", SalaryMin: 90000, SalaryMax: 140000}

	assert.InDelta(t, 1.0, computeSalaryScore(profile, posting), 0.001)
}

func TestComputeSalaryScore_Disjoint(t *testing.T) {
	profile := &types.UserProfile{Preferences: types.CareerPreferences{SalaryMin: 150000, SalaryMax: 180000}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", SalaryMin: 80000, SalaryMax: 100000}

	assert.Zero(t, computeSalaryScore(profile, posting))
}

func TestComputeSalaryScore_PartialOverlap(t *testing.T) {
	profile := &types.UserProfile{Preferences: types.CareerPreferences{SalaryMin: 100000, SalaryMax: 140000}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme", SalaryMin: 80000, SalaryMax: 120000}

	assert.InDelta(t, 0.5, computeSalaryScore(profile, posting), 0.001)
}

func TestComputeSalaryScore_MissingDataNeutral(t *testing.T) {
	profile := &types.UserProfile{Preferences: types.CareerPreferences{SalaryMin: 100000, SalaryMax: 140000}}
	posting := &types.JobPosting{Title: "Engineer", Company: "Acme"}
	assert.InDelta(t, neutralScore, computeSalaryScore(profile, posting), 0.001)

	noPrefs := &types.UserProfile{}
	funded := &types.JobPosting{Title: "Engineer", Company: "Acme", SalaryMin: 80000, SalaryMax: 120000}
	assert.InDelta(t, neutralScore, computeSalaryScore(noPrefs, funded), 0.001)
}
