package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSkillKey_Normalizes(t *testing.T) {
	s := Skill{Name: "  Python "}
	assert.Equal(t, "python", s.Key())
}

func TestWorkExperienceKey_CaseInsensitive(t *testing.T) {
	a := WorkExperience{Title: "Software Engineer", Company: "Acme"}
	b := WorkExperience{Title: "software engineer", Company: "ACME"}
	assert.Equal(t, a.Key(), b.Key())
}

func TestWorkExperienceDuration_CurrentRunsToNow(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	exp := WorkExperience{Title: "Engineer", Company: "Acme", StartDate: &start, Current: true}
	d := exp.Duration(now)
	assert.InDelta(t, 2.0, d.Hours()/(24*365.25), 0.01)
}

func TestWorkExperienceDuration_NoStartIsZero(t *testing.T) {
	exp := WorkExperience{Title: "Engineer", Company: "Acme"}
	assert.Zero(t, exp.Duration(time.Now()))
}

func TestUserProfile_HasSkill(t *testing.T) {
	p := UserProfile{Skills: []Skill{{Name: "Python"}, {Name: "SQL"}}}
	assert.True(t, p.HasSkill("python"))
	assert.True(t, p.HasSkill(" SQL "))
	assert.False(t, p.HasSkill("go"))
}

func TestUserProfile_SkillNames(t *testing.T) {
	p := UserProfile{Skills: []Skill{{Name: "Python"}, {Name: "SQL"}}}
	assert.Equal(t, []string{"Python", "SQL"}, p.SkillNames())
}

func TestUserProfile_TotalExperienceYears(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s1 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	e1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s2 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := UserProfile{Experience: []WorkExperience{
		{Title: "Engineer", Company: "Acme", StartDate: &s1, EndDate: &e1},
		{Title: "Senior Engineer", Company: "Beta", StartDate: &s2, Current: true},
	}}
	assert.InDelta(t, 5.0, p.TotalExperienceYears(now), 0.05)
}

func TestCareerPreferences_AcceptsRemote(t *testing.T) {
	assert.True(t, CareerPreferences{Remote: RemoteOnly}.AcceptsRemote())
	assert.True(t, CareerPreferences{Remote: RemoteFlexible}.AcceptsRemote())
	assert.True(t, CareerPreferences{Remote: RemoteHybrid}.AcceptsRemote())
	assert.False(t, CareerPreferences{Remote: RemoteOnsite}.AcceptsRemote())
}
