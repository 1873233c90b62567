// Package learning turns a skill-gap report into a time-boxed study
// plan with monthly milestones.
package learning

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// Weekly study-hour bounds. The estimate never falls to zero and never
// exceeds a sustainable ceiling.
const (
	minWeeklyHours = 2
	maxWeeklyHours = 25
)

// hoursPerSkill is the assumed total study effort for one new skill.
const hoursPerSkill = 40

// weeksPerMonth approximates a month for the weekly-hour estimate.
const weeksPerMonth = 4

// GeneratePath distributes missing skills evenly across a monthly
// timeline. Every milestone addresses at least one skill, no skill is
// repeated or dropped, and months beyond the skill supply are omitted.
// A non-positive timeline is a caller error.
func GeneratePath(targetRole string, missingSkills []string, timelineMonths int) (*types.LearningPath, error) {
	if timelineMonths < 1 {
		return nil, fmt.Errorf("timeline must be at least one month, got %d", timelineMonths)
	}

	skills := dedupe(missingSkills)
	path := &types.LearningPath{
		TargetRole:      targetRole,
		TimelineMonths:  timelineMonths,
		TotalSkillCount: len(skills),
		WeeklyHours:     weeklyHours(len(skills), timelineMonths),
	}
	if len(skills) == 0 {
		return path, nil
	}

	months := timelineMonths
	if months > len(skills) {
		months = len(skills)
	}

	// Spread skills across months, front-loading the remainder so
	// earlier milestones are never lighter than later ones.
	base := len(skills) / months
	extra := len(skills) % months
	idx := 0
	for month := 1; month <= months; month++ {
		count := base
		if month <= extra {
			count++
		}
		subset := skills[idx : idx+count]
		idx += count

		path.Milestones = append(path.Milestones, types.Milestone{
			Month:      month,
			Title:      fmt.Sprintf("Month %d: %s", month, strings.Join(subset, ", ")),
			Skills:     subset,
			Activities: activities(subset),
		})
	}
	return path, nil
}

// GenerateFromReport builds a path from a skill-gap report, following
// the report's recommendation order so high-priority skills come first.
func GenerateFromReport(report *types.SkillGapReport, timelineMonths int) (*types.LearningPath, error) {
	skills := make([]string, 0, len(report.Recommendations))
	for _, rec := range report.Recommendations {
		skills = append(skills, rec.Skill)
	}
	return GeneratePath(report.TargetRole, skills, timelineMonths)
}

// weeklyHours estimates sustained weekly study time for a skill count
// and timeline, bounded to a sane range.
func weeklyHours(skillCount, months int) int {
	if skillCount == 0 {
		return minWeeklyHours
	}
	hours := int(math.Ceil(float64(skillCount*hoursPerSkill) / float64(months*weeksPerMonth)))
	if hours < minWeeklyHours {
		return minWeeklyHours
	}
	if hours > maxWeeklyHours {
		return maxWeeklyHours
	}
	return hours
}

// activities derives suggested learning activities from skill names.
func activities(skills []string) []string {
	acts := make([]string, 0, len(skills)*2+1)
	for _, skill := range skills {
		acts = append(acts,
			fmt.Sprintf("Complete a structured course on %s", skill),
			fmt.Sprintf("Build a small project that uses %s", skill),
		)
	}
	acts = append(acts, "Review progress and adjust the plan")
	return acts
}

func dedupe(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
