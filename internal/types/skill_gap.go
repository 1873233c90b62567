//nolint:revive // types is a standard Go package name pattern
package types

// ReadinessTier buckets how closely a profile matches a target role.
type ReadinessTier string

// Readiness tiers. Boundaries are inclusive on the lower end:
// >=80% high, >=40% medium, below that low.
const (
	ReadinessHigh   ReadinessTier = "high"
	ReadinessMedium ReadinessTier = "medium"
	ReadinessLow    ReadinessTier = "low"
)

// Priority ranks a learning recommendation.
type Priority string

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// LearningRecommendation pairs a missing skill with its learning priority.
type LearningRecommendation struct {
	Skill    string   `json:"skill"`
	Priority Priority `json:"priority"`
}

// SkillGapReport is the output of comparing profile skills against a
// target role or posting's requirements.
type SkillGapReport struct {
	TargetRole      string                   `json:"target_role,omitempty"`
	MatchedSkills   []string                 `json:"matched_skills"`
	MissingSkills   []string                 `json:"missing_skills"`
	MatchPercentage int                      `json:"match_percentage"`
	Readiness       ReadinessTier            `json:"readiness"`
	Recommendations []LearningRecommendation `json:"recommendations"`
}
