//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ParseStatus reports how the extraction pipeline fared. Failures are
// communicated through this field, never through errors: callers always
// receive a well-formed ResumeData.
type ParseStatus string

// Parse status values.
const (
	ParseOK              ParseStatus = "ok"
	ParsePartial         ParseStatus = "partial"
	ParseNormalizeFailed ParseStatus = "normalize_failed"
)

// Project is a portfolio entry extracted from a resume.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// ResumeData is the intermediate extraction result produced from raw
// resume text before it is adapted into a UserProfile. Every field is
// best-effort; absent data is an empty value, not an error.
type ResumeData struct {
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Summary        string           `json:"summary,omitempty"`
	Skills         []string         `json:"skills"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Languages      []string         `json:"languages,omitempty"`
	Projects       []Project        `json:"projects,omitempty"`
	RawText        string           `json:"-"`

	ConfidenceScore float64     `json:"confidence_score"`
	Status          ParseStatus `json:"status"`
	ParsedAt        time.Time   `json:"parsed_at"`

	// CleanupNote records the outcome of the optional clean-up pass,
	// for example a fallback after an upstream failure. Empty when no
	// clean-up ran.
	CleanupNote string `json:"cleanup_note,omitempty"`
}
