package parsing

import (
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// minRealEntryDescription is the shortest description that keeps an
// experience entry whose title looks like a section heading.
const minRealEntryDescription = 20

// CanonicalSkill returns the canonical form of a skill name: trimmed,
// internal whitespace collapsed, known variants mapped to their canonical
// spelling, and acronyms rendered upper-case. All other names keep their
// cleaned original casing.
func CanonicalSkill(name string) string {
	cleaned := collapseWhitespace(name)
	if cleaned == "" {
		return ""
	}
	if canonical, ok := skillVariants[strings.ToLower(cleaned)]; ok {
		return canonical
	}
	if acronymCasings[strings.ToUpper(cleaned)] {
		return strings.ToUpper(cleaned)
	}
	return cleaned
}

// NormalizeSkills canonicalizes and deduplicates a skill list.
// Deduplication is case-insensitive, first occurrence wins, and relative
// order is preserved.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))

	for _, raw := range skills {
		skill := CanonicalSkill(raw)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, skill)
	}
	return normalized
}

// NormalizeExperience drops false-positive entries and deduplicates the
// rest. An entry whose title looks like a bare section heading and whose
// description is absent or very short is a segmentation artifact, not a
// job. Duplicates share a case-insensitive (title, company) key; the
// first occurrence wins.
func NormalizeExperience(entries []types.WorkExperience) []types.WorkExperience {
	normalized := make([]types.WorkExperience, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		if IsHeadingCandidate(entry.Title) && len(strings.TrimSpace(entry.Description)) < minRealEntryDescription {
			continue
		}
		key := entry.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, entry)
	}
	return normalized
}

// Normalize post-processes extracted resume data into a clean,
// deduplicated record set. It never fails: an internal fault returns the
// original input marked with a failure status so callers can proceed
// with best-effort data.
func Normalize(data *types.ResumeData) (result *types.ResumeData) {
	if data == nil {
		return &types.ResumeData{Status: types.ParseNormalizeFailed}
	}
	defer func() {
		if r := recover(); r != nil {
			failed := *data
			failed.Status = types.ParseNormalizeFailed
			result = &failed
		}
	}()

	out := *data
	out.Skills = NormalizeSkills(data.Skills)
	out.Experience = NormalizeExperience(data.Experience)
	out.Education = dedupeEducation(data.Education)
	out.Certifications = dedupeCertifications(data.Certifications)
	out.Languages = NormalizeSkills(data.Languages)
	return &out
}

func dedupeEducation(entries []types.Education) []types.Education {
	deduped := make([]types.Education, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		deduped = append(deduped, e)
	}
	return deduped
}

func dedupeCertifications(entries []types.Certification) []types.Certification {
	deduped := make([]types.Certification, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, c := range entries {
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true
		deduped = append(deduped, c)
	}
	return deduped
}
