package matching

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/career-advisor/internal/types"
)

// Engine scores profiles against postings. It holds no mutable state
// and is safe for concurrent use; the clock is injectable for tests.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt returns an engine with a fixed clock.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Analyze scores a single profile/posting pair. Neither input is
// mutated.
func (e *Engine) Analyze(profile *types.UserProfile, posting types.JobPosting, weights Weights) types.MatchAnalysis {
	skillScore, matched, missing := computeSkillScore(profile, &posting)
	expScore := computeExperienceScore(profile, &posting, e.now())
	locScore := computeLocationScore(profile, &posting)
	salScore := computeSalaryScore(profile, &posting)

	overall := clampScore(weights.Skills*skillScore +
		weights.Experience*expScore +
		weights.Location*locScore +
		weights.Salary*salScore)

	analysis := types.MatchAnalysis{
		Posting:      posting,
		OverallScore: overall,
		SubScores: types.SubScores{
			Skills:     clampScore(skillScore),
			Experience: clampScore(expScore),
			Location:   clampScore(locScore),
			Salary:     clampScore(salScore),
		},
		SkillMatches: matched,
		SkillGaps:    missing,
	}
	analysis.Reasons = buildReasons(analysis)
	return analysis
}

// Match scores a profile against every posting and returns the analyses
// sorted by descending overall score. Ties rank the more recently
// posted job first, then the alphabetically earlier company. Only
// analyses at or above MinScore are kept, and the result never exceeds
// Limit when one is set. Invalid options are rejected before any
// scoring happens.
func (e *Engine) Match(profile *types.UserProfile, postings []types.JobPosting, opts Options) ([]types.MatchAnalysis, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	results := make([]types.MatchAnalysis, 0, len(postings))
	for _, posting := range postings {
		analysis := e.Analyze(profile, posting, opts.Weights)
		if analysis.OverallScore >= opts.MinScore {
			results = append(results, analysis)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].OverallScore != results[j].OverallScore {
			return results[i].OverallScore > results[j].OverallScore
		}
		di, dj := results[i].Posting.PostedDate, results[j].Posting.PostedDate
		switch {
		case di != nil && dj != nil && !di.Equal(*dj):
			return di.After(*dj)
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		}
		return results[i].Posting.Company < results[j].Posting.Company
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}

// buildReasons creates a brief explanation of the match.
func buildReasons(a types.MatchAnalysis) []string {
	var reasons []string

	switch {
	case a.SubScores.Skills >= 0.7:
		reasons = append(reasons, fmt.Sprintf("Strong skill match (%s)", strings.Join(a.SkillMatches, ", ")))
	case a.SubScores.Skills >= 0.4:
		reasons = append(reasons, fmt.Sprintf("Moderate skill match (%s)", strings.Join(a.SkillMatches, ", ")))
	case len(a.SkillMatches) > 0:
		reasons = append(reasons, fmt.Sprintf("Weak skill match (%s)", strings.Join(a.SkillMatches, ", ")))
	default:
		reasons = append(reasons, "No skill matches")
	}

	if len(a.SkillGaps) > 0 {
		reasons = append(reasons, fmt.Sprintf("Missing skills: %s", strings.Join(a.SkillGaps, ", ")))
	}

	if a.SubScores.Experience >= 0.8 {
		reasons = append(reasons, "Experience level fits")
	} else if a.SubScores.Experience < 0.5 {
		reasons = append(reasons, "Below the stated experience level")
	}

	if a.SubScores.Location >= 1.0 {
		reasons = append(reasons, "Location works")
	}

	return reasons
}
