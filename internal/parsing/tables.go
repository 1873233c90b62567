package parsing

// Section labels produced by segmentation.
const (
	SectionPreamble       = "preamble"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionLanguages      = "languages"
)

// headingVocabulary maps heading keywords to section labels. Lookup is
// ordered so multi-word keywords win over their substrings.
var headingVocabulary = []struct {
	Keyword string
	Label   string
}{
	{"WORK HISTORY", SectionExperience},
	{"WORK EXPERIENCE", SectionExperience},
	{"EMPLOYMENT", SectionExperience},
	{"EXPERIENCE", SectionExperience},
	{"CERTIFICATION", SectionCertifications},
	{"LICENSES", SectionCertifications},
	{"EDUCATION", SectionEducation},
	{"ACADEMIC", SectionEducation},
	{"PROJECTS", SectionProjects},
	{"LANGUAGES", SectionLanguages},
	{"SKILLS", SectionSkills},
	{"TECHNOLOGIES", SectionSkills},
	{"COMPETENCIES", SectionSkills},
	{"SUMMARY", SectionSummary},
	{"OBJECTIVE", SectionSummary},
	{"PROFILE", SectionSummary},
	{"ABOUT", SectionSummary},
}

// acronymCasings are skill names always rendered upper-case.
var acronymCasings = map[string]bool{
	"SQL":   true,
	"AWS":   true,
	"GCP":   true,
	"GPU":   true,
	"CPU":   true,
	"HTML":  true,
	"CSS":   true,
	"API":   true,
	"REST":  true,
	"CI/CD": true,
}

// skillVariants maps common skill name variants to canonical names
var skillVariants = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"py":         "Python",
}

// skillStopWords are tokens discarded during skill extraction. They are
// section headings and list filler that token splitting sometimes captures.
var skillStopWords = map[string]bool{
	"skills":         true,
	"technical":      true,
	"technologies":   true,
	"summary":        true,
	"experience":     true,
	"education":      true,
	"certifications": true,
	"projects":       true,
	"languages":      true,
	"and":            true,
	"etc":            true,
	"other":          true,
}

// skillCategories assigns a coarse category to well-known skills. Skills
// not listed keep an empty category.
var skillCategories = map[string]string{
	"python":     "programming",
	"go":         "programming",
	"java":       "programming",
	"javascript": "programming",
	"typescript": "programming",
	"c++":        "programming",
	"ruby":       "programming",
	"rust":       "programming",
	"sql":        "data",
	"postgresql": "data",
	"mysql":      "data",
	"mongodb":    "data",
	"spark":      "data",
	"aws":        "cloud",
	"gcp":        "cloud",
	"azure":      "cloud",
	"kubernetes": "infrastructure",
	"docker":     "infrastructure",
	"terraform":  "infrastructure",
	"ci/cd":      "infrastructure",
	"react":      "frontend",
	"vue":        "frontend",
	"html":       "frontend",
	"css":        "frontend",
	"node.js":    "backend",
	"django":     "backend",
	"rest":       "backend",
	"api":        "backend",
}

// dateLayouts are the accepted resume date formats, tried in order.
var dateLayouts = []string{
	"January 2006",
	"Jan 2006",
	"01/2006",
	"2006-01",
	"2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// degreeKeywords flag a line as a degree statement.
var degreeKeywords = []string{
	"Bachelor", "Master", "Doctor", "PhD", "Ph.D", "MBA",
	"B.S.", "M.S.", "B.A.", "M.A.", "BS ", "MS ", "BA ", "MA ",
	"Associate", "Diploma",
}

// institutionKeywords flag a line as an institution name.
var institutionKeywords = []string{
	"University", "College", "Institute", "School", "Academy", "Polytechnic",
}
