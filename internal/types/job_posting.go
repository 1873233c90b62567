//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ExperienceLevel tags a posting's target seniority.
type ExperienceLevel string

// Experience level values, ordered from least to most senior.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelPrincipal ExperienceLevel = "principal"
	LevelExecutive ExperienceLevel = "executive"
)

// LevelRank maps experience levels onto a numeric ladder for distance
// comparisons. Unknown levels rank as mid.
func LevelRank(level ExperienceLevel) int {
	switch level {
	case LevelEntry:
		return 1
	case LevelJunior:
		return 2
	case LevelMid:
		return 3
	case LevelSenior:
		return 4
	case LevelLead:
		return 5
	case LevelPrincipal:
		return 6
	case LevelExecutive:
		return 7
	default:
		return 3
	}
}

// JobPosting is a read-only external entity produced by a job-search
// collaborator. Matching never mutates postings.
type JobPosting struct {
	ID              string          `json:"id,omitempty"`
	Title           string          `json:"title" validate:"required"`
	Company         string          `json:"company" validate:"required"`
	Location        string          `json:"location,omitempty"`
	Description     string          `json:"description,omitempty"`
	Requirements    []string        `json:"requirements,omitempty"`
	SalaryMin       int             `json:"salary_min,omitempty"`
	SalaryMax       int             `json:"salary_max,omitempty"`
	Remote          bool            `json:"remote"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	PostedDate      *time.Time      `json:"posted_date,omitempty"`
	Source          string          `json:"source,omitempty"`
	URL             string          `json:"url,omitempty"`
}

// Validate checks the posting carries the fields matching relies on.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
