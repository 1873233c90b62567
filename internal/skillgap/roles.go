// Package skillgap compares a profile's skills with a target role's
// requirements and produces prioritized learning recommendations.
package skillgap

import (
	"sort"
	"strings"
)

// roleRequirements maps well-known target roles to their expected
// skill sets. Lookup is case-insensitive on the role name.
var roleRequirements = map[string][]string{
	"software engineer": {"Python", "Git", "SQL", "Data Structures", "Algorithms", "Testing"},
	"backend developer": {"Python", "SQL", "REST", "Docker", "Microservices", "Caching"},
	"frontend developer": {"JavaScript", "HTML", "CSS", "React", "TypeScript", "Testing"},
	"full stack developer": {"JavaScript", "HTML", "CSS", "React", "Node.js", "SQL", "REST"},
	"data scientist": {"Python", "SQL", "Statistics", "Machine Learning", "Pandas", "Data Visualization"},
	"data engineer": {"Python", "SQL", "Spark", "Airflow", "ETL", "Data Warehousing"},
	"machine learning engineer": {"Python", "Machine Learning", "TensorFlow", "SQL", "Docker", "MLOps"},
	"devops engineer": {"Linux", "Docker", "Kubernetes", "CI/CD", "Terraform", "AWS", "Monitoring"},
	"cloud engineer": {"AWS", "Terraform", "Docker", "Kubernetes", "Networking", "Linux"},
	"security engineer": {"Networking", "Linux", "Cryptography", "Threat Modeling", "Python", "SIEM"},
	"product manager": {"Roadmapping", "User Research", "Analytics", "SQL", "Communication", "Prioritization"},
	"engineering manager": {"Leadership", "Hiring", "Roadmapping", "Communication", "System Design", "Mentoring"},
}

// highDemandSkills is the curated reference list that promotes a
// missing skill to high priority.
var highDemandSkills = map[string]bool{
	"python":           true,
	"sql":              true,
	"aws":              true,
	"kubernetes":       true,
	"docker":           true,
	"machine learning": true,
	"react":            true,
	"typescript":       true,
	"go":               true,
	"terraform":        true,
	"ci/cd":            true,
	"system design":    true,
}

// RoleRequirements returns the expected skills for a target role, or
// nil for an unknown role.
func RoleRequirements(role string) []string {
	reqs, ok := roleRequirements[strings.ToLower(strings.TrimSpace(role))]
	if !ok {
		return nil
	}
	out := make([]string, len(reqs))
	copy(out, reqs)
	return out
}

// KnownRoles lists the roles with curated requirement sets in
// alphabetical order.
func KnownRoles() []string {
	roles := make([]string, 0, len(roleRequirements))
	for role := range roleRequirements {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
