package skillgap

import (
	"math"
	"strings"

	"github.com/jonathan/career-advisor/internal/parsing"
	"github.com/jonathan/career-advisor/internal/types"
)

// Readiness tier thresholds on the match percentage, inclusive on the
// lower bound.
const (
	highReadinessThreshold   = 80
	mediumReadinessThreshold = 40
)

// Analyze compares profile skills with the requirements of a target
// role and reports matched and missing skills, a match percentage, a
// readiness tier, and prioritized learning recommendations. When the
// role is unknown and no explicit requirements are given, everything
// matches vacuously and readiness is high.
func Analyze(profileSkills []string, targetRole string, requirements []string) *types.SkillGapReport {
	if requirements == nil {
		requirements = RoleRequirements(targetRole)
	}

	have := make(map[string]bool, len(profileSkills))
	for _, s := range profileSkills {
		have[strings.ToLower(parsing.CanonicalSkill(s))] = true
	}

	report := &types.SkillGapReport{TargetRole: targetRole}
	seen := make(map[string]bool, len(requirements))
	for _, req := range requirements {
		canonical := parsing.CanonicalSkill(req)
		key := strings.ToLower(canonical)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if have[key] {
			report.MatchedSkills = append(report.MatchedSkills, canonical)
		} else {
			report.MissingSkills = append(report.MissingSkills, canonical)
		}
	}

	total := len(report.MatchedSkills) + len(report.MissingSkills)
	if total == 0 {
		report.MatchPercentage = 100
	} else {
		report.MatchPercentage = int(math.Round(float64(len(report.MatchedSkills)) / float64(total) * 100))
	}
	report.Readiness = readinessTier(report.MatchPercentage)
	report.Recommendations = recommend(report.MissingSkills)
	return report
}

// AnalyzeProfile runs Analyze over a full profile.
func AnalyzeProfile(profile *types.UserProfile, targetRole string) *types.SkillGapReport {
	return Analyze(profile.SkillNames(), targetRole, nil)
}

// AnalyzePosting runs Analyze against a posting's requirement list.
func AnalyzePosting(profile *types.UserProfile, posting *types.JobPosting) *types.SkillGapReport {
	return Analyze(profile.SkillNames(), posting.Title, posting.Requirements)
}

// readinessTier buckets a match percentage.
func readinessTier(pct int) types.ReadinessTier {
	switch {
	case pct >= highReadinessThreshold:
		return types.ReadinessHigh
	case pct >= mediumReadinessThreshold:
		return types.ReadinessMedium
	default:
		return types.ReadinessLow
	}
}

// recommend orders missing skills by priority: high-demand skills
// first, each tier keeping the original requirement order.
func recommend(missing []string) []types.LearningRecommendation {
	recs := make([]types.LearningRecommendation, 0, len(missing))
	for _, skill := range missing {
		if highDemandSkills[strings.ToLower(skill)] {
			recs = append(recs, types.LearningRecommendation{Skill: skill, Priority: types.PriorityHigh})
		}
	}
	for _, skill := range missing {
		if !highDemandSkills[strings.ToLower(skill)] {
			recs = append(recs, types.LearningRecommendation{Skill: skill, Priority: types.PriorityMedium})
		}
	}
	return recs
}
