package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/career-advisor/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?\(?\d[\d\s().-]{7,}\d`)
	linkedinRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubRe   = regexp.MustCompile(`(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+`)
	urlRe      = regexp.MustCompile(`https?://[^\s]+`)
	locationRe = regexp.MustCompile(`^([A-Z][A-Za-z .'-]+),\s*([A-Z]{2}|[A-Z][A-Za-z .'-]+)$`)
	gpaRe      = regexp.MustCompile(`(?i)GPA[:\s]+([0-4](?:\.\d{1,2})?)`)
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	dateRe     = regexp.MustCompile(`(?i)([A-Za-z]+\.? \d{4}|\d{1,2}/\d{4}|\d{4}-\d{2}|\d{4})\s*[-–—]\s*([A-Za-z]+\.? \d{4}|\d{1,2}/\d{4}|\d{4}-\d{2}|\d{4}|Present|Current)`)
)

// Extract runs segmentation and per-section extraction over raw resume
// text. Each section is extracted independently; a section that yields
// nothing leaves its slice empty and lowers the confidence score. Extract
// never returns an error.
func Extract(raw string) *types.ResumeData {
	sections := SegmentSections(raw)

	data := &types.ResumeData{
		RawText:  raw,
		Status:   types.ParseOK,
		ParsedAt: time.Now().UTC(),
	}
	data.PersonalInfo = ExtractPersonalInfo(raw)

	if span, ok := sections.Get(SectionSummary); ok {
		data.Summary = collapseWhitespace(span)
	}
	if span, ok := sections.Get(SectionSkills); ok {
		data.Skills = ExtractSkills(span)
	}
	if span, ok := sections.Get(SectionExperience); ok {
		data.Experience = ExtractExperience(span)
	}
	if span, ok := sections.Get(SectionEducation); ok {
		data.Education = ExtractEducation(span)
	}
	if span, ok := sections.Get(SectionCertifications); ok {
		data.Certifications = ExtractCertifications(span)
	}
	if span, ok := sections.Get(SectionLanguages); ok {
		data.Languages = ExtractSkills(span)
	}
	if span, ok := sections.Get(SectionProjects); ok {
		data.Projects = ExtractProjects(span)
	}

	data.ConfidenceScore = ConfidenceScore(data)
	if data.ConfidenceScore < 0.5 {
		data.Status = types.ParsePartial
	}
	return data
}

// ExtractPersonalInfo pulls contact details out of the full document text.
// The name falls back to the first plausible line of the document when no
// explicit field names it.
func ExtractPersonalInfo(raw string) types.PersonalInfo {
	info := types.PersonalInfo{}

	info.Email = emailRe.FindString(raw)
	if m := linkedinRe.FindString(raw); m != "" {
		info.LinkedIn = m
	}
	if m := githubRe.FindString(raw); m != "" {
		info.GitHub = m
	}
	for _, u := range urlRe.FindAllString(raw, -1) {
		if !strings.Contains(u, "linkedin.com") && !strings.Contains(u, "github.com") {
			info.Website = strings.TrimRight(u, ".,)")
			break
		}
	}

	lines := strings.Split(raw, "\n")
	for _, line := range lines {
		// strip emails first so their digits never match as a phone
		trimmed := emailRe.ReplaceAllString(strings.TrimSpace(line), "")
		if m := phoneRe.FindString(trimmed); m != "" {
			info.Phone = strings.TrimSpace(m)
			break
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if locationRe.MatchString(trimmed) {
			info.Location = trimmed
			break
		}
		if after, ok := strings.CutPrefix(trimmed, "Location:"); ok {
			info.Location = strings.TrimSpace(after)
			break
		}
	}
	info.Name = inferName(lines)

	return info
}

// inferName returns the first line of the document that plausibly holds a
// person's name: non-empty, free of email/phone/URL markers, and under
// 100 characters.
func inferName(lines []string) string {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) < 2 || len(trimmed) >= 100 {
			continue
		}
		if strings.Contains(trimmed, "@") ||
			strings.Contains(trimmed, "http") ||
			phoneRe.MatchString(trimmed) {
			continue
		}
		if after, ok := strings.CutPrefix(trimmed, "Name:"); ok {
			return strings.TrimSpace(after)
		}
		if IsHeadingCandidate(trimmed) && headingLabel(trimmed) != "" {
			continue
		}
		return trimmed
	}
	return ""
}

// ExtractSkills splits a skills span into tokens on commas, semicolons,
// bullets, and newlines. Tokens shorter than two characters or matching a
// stop-word are discarded.
func ExtractSkills(span string) []string {
	tokens := strings.FieldsFunc(span, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '•' || r == '|'
	})

	var skills []string
	for _, tok := range tokens {
		tok = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(tok), "-*• \t"))
		if len(tok) < 2 {
			continue
		}
		if skillStopWords[strings.ToLower(tok)] {
			continue
		}
		skills = append(skills, tok)
	}
	return skills
}

// ExtractExperience converts an experience span into job entries. Entries
// are separated by title/company lines; splitting on blank-line runs is
// the fallback when no line matches the title pattern.
func ExtractExperience(span string) []types.WorkExperience {
	blocks := splitEntryBlocks(span, isTitleLine)

	var entries []types.WorkExperience
	for _, block := range blocks {
		if entry, ok := parseExperienceBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// isTitleLine matches the "Title - Company" and "Title at Company" entry
// separators used by experience extraction.
func isTitleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 80 {
		return false
	}
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "*") {
		return false
	}
	if dateRe.MatchString(trimmed) {
		return false
	}
	first := rune(trimmed[0])
	if first < 'A' || first > 'Z' {
		return false
	}
	return strings.Contains(trimmed, " - ") || strings.Contains(trimmed, " at ")
}

// splitEntryBlocks groups span lines into candidate entries. A line
// matching isStart opens a new block; when nothing matches, blank-line
// runs separate blocks instead.
func splitEntryBlocks(span string, isStart func(string) bool) [][]string {
	lines := strings.Split(span, "\n")

	anyStart := false
	for _, line := range lines {
		if isStart(line) {
			anyStart = true
			break
		}
	}

	var blocks [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if anyStart {
			if isStart(line) {
				flush()
			}
			if trimmed != "" {
				current = append(current, trimmed)
			}
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()
	return blocks
}

// parseExperienceBlock builds one job entry from a block of lines. The
// first line supplies title and company, a date-range line supplies the
// period, bullet lines become achievements, and everything else joins
// into the description.
func parseExperienceBlock(block []string) (types.WorkExperience, bool) {
	if len(block) == 0 {
		return types.WorkExperience{}, false
	}

	entry := types.WorkExperience{}
	entry.Title, entry.Company = splitTitleCompany(block[0])
	if entry.Title == "" {
		return types.WorkExperience{}, false
	}

	var desc []string
	for _, line := range block[1:] {
		if m := dateRe.FindStringSubmatch(line); m != nil && entry.StartDate == nil {
			entry.StartDate = parseFlexibleDate(m[1])
			endTok := strings.ToLower(m[2])
			if endTok == "present" || endTok == "current" {
				entry.Current = true
			} else {
				entry.EndDate = parseFlexibleDate(m[2])
			}
			rest := strings.TrimSpace(strings.Replace(line, m[0], "", 1))
			rest = strings.Trim(rest, "|,- ")
			if rest != "" && entry.Location == "" {
				entry.Location = rest
			}
			continue
		}
		if bullet, ok := stripBullet(line); ok {
			entry.Achievements = append(entry.Achievements, bullet)
			continue
		}
		desc = append(desc, line)
	}
	entry.Description = strings.Join(desc, " ")
	return entry, true
}

// splitTitleCompany splits a "Title - Company" or "Title at Company" line.
// The company is empty when neither separator appears.
func splitTitleCompany(line string) (title, company string) {
	line = strings.TrimSpace(line)
	if before, after, found := strings.Cut(line, " - "); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	if before, after, found := strings.Cut(line, " at "); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return line, ""
}

// stripBullet removes a leading bullet marker, reporting whether one
// was present.
func stripBullet(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{"- ", "• ", "* "} {
		if after, ok := strings.CutPrefix(trimmed, marker); ok {
			return strings.TrimSpace(after), true
		}
	}
	return trimmed, false
}

// ExtractEducation converts an education span into degree entries, one
// per blank-line group.
func ExtractEducation(span string) []types.Education {
	blocks := splitEntryBlocks(span, func(string) bool { return false })

	var entries []types.Education
	for _, block := range blocks {
		entry := types.Education{}
		for _, line := range block {
			switch {
			case entry.Degree == "" && containsAny(line, degreeKeywords):
				entry.Degree = line
			case entry.Institution == "" && containsAny(line, institutionKeywords):
				entry.Institution = line
			}
			if m := gpaRe.FindStringSubmatch(line); m != nil && entry.GPA == nil {
				if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
					entry.GPA = &gpa
				}
			}
			if entry.GraduationDate == nil {
				if y := yearRe.FindString(line); y != "" {
					entry.GraduationDate = parseFlexibleDate(y)
				}
			}
		}
		if entry.Degree == "" && len(block) > 0 {
			entry.Degree = block[0]
		}
		if entry.Degree != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// ExtractCertifications converts a certifications span into one entry
// per non-empty line, splitting name and issuer on a dash.
func ExtractCertifications(span string) []types.Certification {
	var entries []types.Certification
	for _, line := range strings.Split(span, "\n") {
		line, _ = stripBullet(line)
		if len(strings.TrimSpace(line)) < 2 {
			continue
		}
		cert := types.Certification{}
		cert.Name, cert.Issuer = splitTitleCompany(line)
		if y := yearRe.FindString(line); y != "" {
			cert.IssueDate = parseFlexibleDate(y)
			cert.Name = strings.Trim(strings.Replace(cert.Name, y, "", 1), " ,(-)")
			cert.Issuer = strings.Trim(strings.Replace(cert.Issuer, y, "", 1), " ,(-)")
		}
		if cert.Name != "" {
			entries = append(entries, cert)
		}
	}
	return entries
}

// ExtractProjects converts a projects span into entries, one per
// blank-line group. The first line names the project.
func ExtractProjects(span string) []types.Project {
	blocks := splitEntryBlocks(span, func(string) bool { return false })

	var entries []types.Project
	for _, block := range blocks {
		if len(block) == 0 {
			continue
		}
		proj := types.Project{Name: block[0]}
		var desc []string
		for _, line := range block[1:] {
			if after, ok := strings.CutPrefix(line, "Technologies:"); ok {
				proj.Technologies = ExtractSkills(after)
				continue
			}
			if u := urlRe.FindString(line); u != "" && proj.URL == "" {
				proj.URL = strings.TrimRight(u, ".,)")
				if strings.TrimSpace(strings.Replace(line, u, "", 1)) == "" {
					continue
				}
			}
			desc = append(desc, line)
		}
		proj.Description = strings.Join(desc, " ")
		entries = append(entries, proj)
	}
	return entries
}

// ConfidenceScore rates extraction completeness on a ten-point rubric
// normalized to [0, 1]. Contact fields earn half a point each, skills a
// tenth of a point apiece capped at two, experience half a point per
// entry capped at three, and education, summary, and substantial raw
// text one point each.
func ConfidenceScore(data *types.ResumeData) float64 {
	score := 0.0
	if data.PersonalInfo.Name != "" {
		score += 0.5
	}
	if data.PersonalInfo.Email != "" {
		score += 0.5
	}
	if data.PersonalInfo.Phone != "" {
		score += 0.5
	}
	if data.PersonalInfo.Location != "" {
		score += 0.5
	}
	score += minFloat(2.0, float64(len(data.Skills))*0.1)
	score += minFloat(3.0, float64(len(data.Experience))*0.5)
	if len(data.Education) > 0 {
		score += 1.0
	}
	if data.Summary != "" {
		score += 1.0
	}
	if len(data.RawText) > 100 {
		score += 1.0
	}
	return score / 10.0
}

// parseFlexibleDate tries each accepted date layout in turn, returning
// nil when none matches.
func parseFlexibleDate(s string) *time.Time {
	s = strings.TrimSpace(strings.ReplaceAll(s, ".", ""))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func containsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
