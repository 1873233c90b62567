package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-advisor/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	profile := &types.UserProfile{
		PersonalInfo: types.PersonalInfo{Name: "Jane Smith", Email: "jane@example.com"},
		Skills: []types.Skill{
			{Name: "Python", Level: 3},
			{Name: "SQL", Level: 3},
		},
	}
	data := &types.ResumeData{Status: types.ParseOK, ConfidenceScore: 0.72}

	printer.PrintProfile(profile, data)

	out := buf.String()
	assert.Contains(t, out, "PARSED PROFILE")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "0.72")
}

func TestPrintProfile_NilProfile(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil, nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	matches := []types.MatchAnalysis{
		{
			Posting:      types.JobPosting{Title: "Data Engineer", Company: "Acme"},
			OverallScore: 0.85,
			SkillGaps:    []string{"spark"},
		},
	}

	printer.PrintMatches(matches)

	out := buf.String()
	assert.Contains(t, out, "TOP MATCHES")
	assert.Contains(t, out, "Data Engineer at Acme")
	assert.Contains(t, out, "spark")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatches(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkillGapReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	report := &types.SkillGapReport{
		TargetRole:      "data engineer",
		MatchPercentage: 33,
		Readiness:       types.ReadinessLow,
		MissingSkills:   []string{"Spark", "Airflow", "ETL", "Data Warehousing"},
	}

	printer.PrintSkillGapReport(report)

	out := buf.String()
	assert.Contains(t, out, "SKILL GAP REPORT")
	assert.Contains(t, out, "33%")
	assert.Contains(t, out, "Spark")
}

func TestPrintLearningPath(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	path := &types.LearningPath{
		TimelineMonths: 3,
		WeeklyHours:    10,
		Milestones: []types.Milestone{
			{Month: 1, Skills: []string{"spark"}},
			{Month: 2, Skills: []string{"airflow"}},
		},
	}

	printer.PrintLearningPath(path)

	out := buf.String()
	assert.Contains(t, out, "LEARNING PATH")
	assert.Contains(t, out, "Month 1: spark")
	assert.Contains(t, out, "10 hours/week")
}
