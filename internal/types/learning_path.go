//nolint:revive // types is a standard Go package name pattern
package types

// Milestone is one time-boxed unit of a learning path: a single month
// addressing a subset of skill gaps.
type Milestone struct {
	Month      int      `json:"month"`
	Title      string   `json:"title"`
	Skills     []string `json:"skills"`
	Activities []string `json:"activities"`
}

// LearningPath is a month-by-month plan covering a set of skill gaps.
type LearningPath struct {
	TargetRole      string      `json:"target_role,omitempty"`
	TimelineMonths  int         `json:"timeline_months"`
	Milestones      []Milestone `json:"milestones"`
	WeeklyHours     int         `json:"weekly_study_hours"`
	TotalSkillCount int         `json:"total_skill_count"`
}
