package parsing

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/types"
)

// BuildProfile maps normalized resume data into the canonical UserProfile
// consumed by matching. Construction never fails: absent data becomes
// empty collections. Skills without an explicit proficiency get the
// default level, and an entry missing its end date is treated as ongoing
// rather than as a parse error.
func BuildProfile(data *types.ResumeData, prefs types.CareerPreferences) *types.UserProfile {
	profile := &types.UserProfile{
		ID:           uuid.New(),
		PersonalInfo: data.PersonalInfo,
		Summary:      data.Summary,
		Skills:       make([]types.Skill, 0, len(data.Skills)),
		Preferences:  prefs,
		CreatedAt:    time.Now().UTC(),
	}

	for _, name := range data.Skills {
		profile.Skills = append(profile.Skills, types.Skill{
			Name:     name,
			Level:    types.DefaultSkillLevel,
			Category: skillCategories[strings.ToLower(name)],
		})
	}

	profile.Experience = make([]types.WorkExperience, len(data.Experience))
	copy(profile.Experience, data.Experience)
	for i := range profile.Experience {
		if profile.Experience[i].EndDate == nil {
			profile.Experience[i].Current = true
		}
	}

	profile.Education = make([]types.Education, len(data.Education))
	copy(profile.Education, data.Education)
	profile.Certifications = make([]types.Certification, len(data.Certifications))
	copy(profile.Certifications, data.Certifications)
	profile.Languages = append([]string(nil), data.Languages...)

	return profile
}

// ParseResume is the full parsing pipeline: segment, extract, normalize,
// and adapt into a profile. The returned ResumeData carries the
// confidence score and status for the parse.
func ParseResume(raw string, prefs types.CareerPreferences) (*types.UserProfile, *types.ResumeData) {
	data := Normalize(Extract(raw))
	return BuildProfile(data, prefs), data
}
