package matching

import (
	"strings"
	"time"

	"github.com/jonathan/career-advisor/internal/parsing"
	"github.com/jonathan/career-advisor/internal/types"
)

// neutralScore is used when a sub-score has no signal to work with, for
// example a posting without salary data.
const neutralScore = 0.5

// levelMismatchStep is the per-level penalty when a candidate is
// underqualified for a posting's stated experience level.
const levelMismatchStep = 0.3

// overqualifiedScore applies when the candidate ranks above the
// posting's level by any amount.
const overqualifiedScore = 0.8

// computeSkillScore calculates the fraction of posting requirements
// covered by the profile's skills, case-insensitive. It returns the
// score, the matched requirement names, and the missing ones.
// A posting with no requirements scores 0.0.
func computeSkillScore(profile *types.UserProfile, posting *types.JobPosting) (float64, []string, []string) {
	if len(posting.Requirements) == 0 {
		return 0.0, nil, nil
	}

	profileSkills := make(map[string]bool, len(profile.Skills))
	for _, skill := range profile.Skills {
		profileSkills[strings.ToLower(parsing.CanonicalSkill(skill.Name))] = true
	}

	var matched, missing []string
	seen := make(map[string]bool, len(posting.Requirements))
	for _, req := range posting.Requirements {
		canonical := parsing.CanonicalSkill(req)
		key := strings.ToLower(canonical)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if profileSkills[key] {
			matched = append(matched, canonical)
		} else {
			missing = append(missing, canonical)
		}
	}

	total := len(matched) + len(missing)
	if total == 0 {
		return 0.0, nil, nil
	}
	return float64(len(matched)) / float64(total), matched, missing
}

// InferSeniority maps total years of experience onto the experience
// level ladder.
func InferSeniority(years float64) types.ExperienceLevel {
	switch {
	case years < 1:
		return types.LevelEntry
	case years < 3:
		return types.LevelJunior
	case years < 5:
		return types.LevelMid
	case years < 8:
		return types.LevelSenior
	default:
		return types.LevelLead
	}
}

// computeExperienceScore compares the profile's inferred seniority with
// the posting's stated level. An exact match scores 1.0, an
// overqualified candidate scores a fixed discount, and each level of
// shortfall costs a fixed step down to a floor of 0.0. A posting with
// no stated level scores neutral.
func computeExperienceScore(profile *types.UserProfile, posting *types.JobPosting, now time.Time) float64 {
	if posting.ExperienceLevel == "" {
		return neutralScore
	}

	profileRank := types.LevelRank(InferSeniority(profile.TotalExperienceYears(now)))
	postingRank := types.LevelRank(posting.ExperienceLevel)

	switch {
	case profileRank == postingRank:
		return 1.0
	case profileRank > postingRank:
		return overqualifiedScore
	default:
		score := 1.0 - levelMismatchStep*float64(postingRank-profileRank)
		if score < 0.0 {
			score = 0.0
		}
		return score
	}
}

// computeLocationScore scores geographic fit. Remote postings are a
// full match for remote-accepting profiles; otherwise the posting
// location is compared to the preferred location by case-insensitive
// substring, with a partial score when only the broad region matches.
func computeLocationScore(profile *types.UserProfile, posting *types.JobPosting) float64 {
	if posting.Remote && profile.Preferences.AcceptsRemote() {
		return 1.0
	}

	desired := strings.ToLower(strings.TrimSpace(profile.Preferences.DesiredLocation))
	postingLoc := strings.ToLower(strings.TrimSpace(posting.Location))
	if desired == "" || postingLoc == "" {
		return neutralScore
	}
	if strings.Contains(postingLoc, desired) || strings.Contains(desired, postingLoc) {
		return 1.0
	}
	if broadRegion(desired) != "" && broadRegion(desired) == broadRegion(postingLoc) {
		return 0.5
	}
	return 0.0
}

// broadRegion returns the segment after the last comma of a location
// string, which is the state or country in "City, Region" forms.
func broadRegion(location string) string {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(location[idx+1:])
}

// computeSalaryScore measures how much of the profile's desired salary
// range the posting's range covers. Full containment scores 1.0,
// disjoint ranges 0.0, partial overlap interpolates linearly. Either
// side missing salary data scores neutral.
func computeSalaryScore(profile *types.UserProfile, posting *types.JobPosting) float64 {
	prefs := profile.Preferences
	if prefs.SalaryMin == 0 && prefs.SalaryMax == 0 {
		return neutralScore
	}
	if posting.SalaryMin == 0 && posting.SalaryMax == 0 {
		return neutralScore
	}

	desiredLo, desiredHi := rangeBounds(prefs.SalaryMin, prefs.SalaryMax)
	postingLo, postingHi := rangeBounds(posting.SalaryMin, posting.SalaryMax)

	overlapLo := maxInt(desiredLo, postingLo)
	overlapHi := minInt(desiredHi, postingHi)
	if overlapHi < overlapLo {
		return 0.0
	}

	span := desiredHi - desiredLo
	if span == 0 {
		return 1.0
	}
	return float64(overlapHi-overlapLo) / float64(span)
}

// rangeBounds fills an open-ended salary bound with its counterpart so a
// single figure acts as a point range.
func rangeBounds(lo, hi int) (int, int) {
	if lo == 0 {
		lo = hi
	}
	if hi == 0 {
		hi = lo
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}

// clampScore bounds a score to [0, 1].
func clampScore(s float64) float64 {
	if s < 0.0 {
		return 0.0
	}
	if s > 1.0 {
		return 1.0
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
