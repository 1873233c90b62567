//nolint:revive // types is a standard Go package name pattern
package types

// SubScores holds the independently computed matching components.
// Every component lies in [0.0, 1.0].
type SubScores struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Salary     float64 `json:"salary"`
}

// MatchAnalysis is the scored result of comparing one profile against
// one posting. It is ephemeral: computed per request, never persisted
// by the core.
type MatchAnalysis struct {
	Posting      JobPosting `json:"posting"`
	OverallScore float64    `json:"overall_score"`
	SubScores    SubScores  `json:"sub_scores"`
	SkillMatches []string   `json:"skill_matches,omitempty"`
	SkillGaps    []string   `json:"skill_gaps,omitempty"`
	Reasons      []string   `json:"reasons,omitempty"`
}
