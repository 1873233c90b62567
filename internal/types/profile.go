// Package types provides type definitions for structured data used throughout the career-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSkillLevel is assigned to skills extracted without an explicit proficiency.
const DefaultSkillLevel = 3

// PersonalInfo holds contact details extracted from a resume.
// Optional fields are empty strings when absent.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Skill is a single profile skill. Case-insensitive name is the identity
// key within a profile; Level is an ordinal 1-5.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category,omitempty"`
}

// Key returns the identity key used for case-insensitive deduplication.
func (s Skill) Key() string {
	return strings.ToLower(strings.TrimSpace(s.Name))
}

// WorkExperience is a single job entry. Identity within a list is the
// case-insensitive (title, company) pair.
type WorkExperience struct {
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
	Achievements []string   `json:"achievements,omitempty"`
	SkillsUsed   []string   `json:"skills_used,omitempty"`
}

// Key returns the identity key used for deduplication.
func (w WorkExperience) Key() string {
	return strings.ToLower(strings.TrimSpace(w.Title)) + "\x00" + strings.ToLower(strings.TrimSpace(w.Company))
}

// Duration returns the length of the position. Open-ended entries
// (Current or missing end date) are measured against now.
func (w WorkExperience) Duration(now time.Time) time.Duration {
	if w.StartDate == nil {
		return 0
	}
	end := now
	if w.EndDate != nil && !w.Current {
		end = *w.EndDate
	}
	if end.Before(*w.StartDate) {
		return 0
	}
	return end.Sub(*w.StartDate)
}

// Education is a single degree entry.
type Education struct {
	Degree         string     `json:"degree"`
	Institution    string     `json:"institution"`
	FieldOfStudy   string     `json:"field_of_study,omitempty"`
	Location       string     `json:"location,omitempty"`
	GraduationDate *time.Time `json:"graduation_date,omitempty"`
	GPA            *float64   `json:"gpa,omitempty"`
	Honors         []string   `json:"honors,omitempty"`
}

// Key returns the identity key used for deduplication.
func (e Education) Key() string {
	return strings.ToLower(strings.TrimSpace(e.Degree)) + "\x00" + strings.ToLower(strings.TrimSpace(e.Institution))
}

// Certification is a single credential entry.
type Certification struct {
	Name         string     `json:"name"`
	Issuer       string     `json:"issuer,omitempty"`
	IssueDate    *time.Time `json:"issue_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	CredentialID string     `json:"credential_id,omitempty"`
}

// Key returns the identity key used for deduplication.
func (c Certification) Key() string {
	return strings.ToLower(strings.TrimSpace(c.Name)) + "\x00" + strings.ToLower(strings.TrimSpace(c.Issuer))
}

// RemotePolicy expresses where a candidate is willing to work.
type RemotePolicy string

// Remote policy values.
const (
	RemoteOnly     RemotePolicy = "remote"
	RemoteHybrid   RemotePolicy = "hybrid"
	RemoteOnsite   RemotePolicy = "onsite"
	RemoteFlexible RemotePolicy = "flexible"
)

// CareerPreferences packages a candidate's search preferences as fixed
// fields so matching never has to probe a loosely-typed map.
type CareerPreferences struct {
	DesiredLocation string       `json:"desired_location,omitempty"`
	Remote          RemotePolicy `json:"remote,omitempty"`
	SalaryMin       int          `json:"salary_min,omitempty"`
	SalaryMax       int          `json:"salary_max,omitempty"`
	TargetRoles     []string     `json:"target_roles,omitempty"`
}

// AcceptsRemote reports whether the preferences allow a fully remote position.
func (p CareerPreferences) AcceptsRemote() bool {
	return p.Remote == RemoteOnly || p.Remote == RemoteFlexible || p.Remote == RemoteHybrid || p.Remote == ""
}

// UserProfile is the canonical candidate entity consumed by matching.
// It is constructed once per parse or API request and treated as
// immutable afterward; downstream stages derive new values from it.
type UserProfile struct {
	ID             uuid.UUID         `json:"id"`
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []Skill           `json:"skills"`
	Experience     []WorkExperience  `json:"experience"`
	Education      []Education       `json:"education"`
	Certifications []Certification   `json:"certifications"`
	Languages      []string          `json:"languages,omitempty"`
	Preferences    CareerPreferences `json:"preferences"`
	CreatedAt      time.Time         `json:"created_at"`
}

// SkillNames returns the profile's skill names in order.
func (p *UserProfile) SkillNames() []string {
	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Name
	}
	return names
}

// HasSkill reports whether the profile contains a skill by
// case-insensitive name.
func (p *UserProfile) HasSkill(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range p.Skills {
		if s.Key() == key {
			return true
		}
	}
	return false
}

// TotalExperienceYears sums the duration of every experience entry.
func (p *UserProfile) TotalExperienceYears(now time.Time) float64 {
	var total time.Duration
	for _, exp := range p.Experience {
		total += exp.Duration(now)
	}
	return total.Hours() / (24 * 365.25)
}
