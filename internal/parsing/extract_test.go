package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

const sampleResume = `Jane Smith
jane.smith@example.com | (555) 123-4567
Portland, OR
https://linkedin.com/in/janesmith

SUMMARY
Backend engineer with a focus on data-heavy services.

EXPERIENCE
Senior Engineer - Acme Corp
June 2021 - Present | Portland, OR
Owned the ingestion platform.
- Cut pipeline latency by 40%
- Mentored four engineers

Engineer - Initech
March 2018 - May 2021
Built internal billing services.

EDUCATION
B.S. Computer Science
Oregon State University
2017 GPA: 3.7

SKILLS
Python, SQL, aws, Docker; Kubernetes

CERTIFICATIONS
- AWS Solutions Architect - Amazon (2022)
`

func TestExtractPersonalInfo(t *testing.T) {
	info := ExtractPersonalInfo(sampleResume)
	assert.Equal(t, "Jane Smith", info.Name)
	assert.Equal(t, "jane.smith@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "Portland, OR", info.Location)
	assert.Contains(t, info.LinkedIn, "linkedin.com/in/janesmith")
}

func TestInferName_SkipsEmailAndPhoneLines(t *testing.T) {
	raw := "jane@example.com\n555-123-4567\nJane Smith\n"
	info := ExtractPersonalInfo(raw)
	assert.Equal(t, "Jane Smith", info.Name)
}

func TestInferName_ExplicitField(t *testing.T) {
	info := ExtractPersonalInfo("Name: Jane Smith\n")
	assert.Equal(t, "Jane Smith", info.Name)
}

func TestExtractSkills_TokenSplitting(t *testing.T) {
	skills := ExtractSkills("Python, SQL; Docker\nKubernetes • Go")
	assert.Equal(t, []string{"Python", "SQL", "Docker", "Kubernetes", "Go"}, skills)
}

func TestExtractSkills_DiscardsShortAndStopWords(t *testing.T) {
	skills := ExtractSkills("Skills, Python, R, and, SQL")
	assert.Equal(t, []string{"Python", "SQL"}, skills)
}

func TestExtractExperience_TitlePatternSplit(t *testing.T) {
	span := "Senior Engineer - Acme Corp\nJune 2021 - Present\nOwned the platform.\n- Cut latency by 40%\nEngineer - Initech\nMarch 2018 - May 2021\nBuilt billing services."
	entries := ExtractExperience(span)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Senior Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.True(t, first.Current)
	require.NotNil(t, first.StartDate)
	assert.Equal(t, 2021, first.StartDate.Year())
	assert.Equal(t, time.June, first.StartDate.Month())
	assert.Equal(t, []string{"Cut latency by 40%"}, first.Achievements)
	assert.Equal(t, "Owned the platform.", first.Description)

	second := entries[1]
	assert.Equal(t, "Initech", second.Company)
	assert.False(t, second.Current)
	require.NotNil(t, second.EndDate)
	assert.Equal(t, 2021, second.EndDate.Year())
}

func TestExtractExperience_BlankLineFallback(t *testing.T) {
	span := "Worked on checkout flows\nfor a retail site\n\nMaintained CI tooling\nfor the infra team"
	entries := ExtractExperience(span)
	assert.Len(t, entries, 2)
}

func TestExtractEducation(t *testing.T) {
	span := "B.S. Computer Science\nOregon State University\n2017 GPA: 3.7"
	entries := ExtractEducation(span)
	require.Len(t, entries, 1)
	assert.Equal(t, "B.S. Computer Science", entries[0].Degree)
	assert.Equal(t, "Oregon State University", entries[0].Institution)
	require.NotNil(t, entries[0].GPA)
	assert.InDelta(t, 3.7, *entries[0].GPA, 0.001)
	require.NotNil(t, entries[0].GraduationDate)
	assert.Equal(t, 2017, entries[0].GraduationDate.Year())
}

func TestExtractCertifications(t *testing.T) {
	entries := ExtractCertifications("- AWS Solutions Architect - Amazon (2022)")
	require.Len(t, entries, 1)
	assert.Equal(t, "AWS Solutions Architect", entries[0].Name)
	assert.Equal(t, "Amazon", entries[0].Issuer)
	require.NotNil(t, entries[0].IssueDate)
	assert.Equal(t, 2022, entries[0].IssueDate.Year())
}

func TestExtract_FullDocument(t *testing.T) {
	data := Extract(sampleResume)
	assert.Equal(t, "Jane Smith", data.PersonalInfo.Name)
	assert.NotEmpty(t, data.Summary)
	assert.Len(t, data.Experience, 2)
	assert.Len(t, data.Education, 1)
	assert.Len(t, data.Certifications, 1)
	assert.Contains(t, data.Skills, "Python")
	assert.Equal(t, types.ParseOK, data.Status)
	assert.Greater(t, data.ConfidenceScore, 0.6)
}

func TestExtract_EmptyInput(t *testing.T) {
	data := Extract("")
	assert.Empty(t, data.Skills)
	assert.Empty(t, data.Experience)
	assert.Equal(t, types.ParsePartial, data.Status)
	assert.Less(t, data.ConfidenceScore, 0.2)
}

func TestConfidenceScore_Rubric(t *testing.T) {
	data := &types.ResumeData{}
	assert.Zero(t, ConfidenceScore(data))

	data.PersonalInfo = types.PersonalInfo{Name: "Jane", Email: "j@e.com", Phone: "555", Location: "Portland"}
	assert.InDelta(t, 0.2, ConfidenceScore(data), 1e-9)

	data.Skills = make([]string, 30)
	assert.InDelta(t, 0.4, ConfidenceScore(data), 1e-9)

	data.Experience = make([]types.WorkExperience, 10)
	assert.InDelta(t, 0.7, ConfidenceScore(data), 1e-9)
}

func TestParseFlexibleDate_Formats(t *testing.T) {
	for _, in := range []string{"June 2021", "Jun 2021", "06/2021", "2021-06", "2021", "June 1, 2021", "06/01/2021"} {
		d := parseFlexibleDate(in)
		require.NotNil(t, d, in)
		assert.Equal(t, 2021, d.Year(), in)
	}
	assert.Nil(t, parseFlexibleDate("sometime"))
}
