// Package parsing converts raw resume text into structured records. The
// pipeline runs segmentation, per-section entity extraction, and
// normalization, and never fails on malformed input: missing sections
// degrade the confidence score instead of raising errors.
package parsing

import (
	"strings"
	"unicode"
)

// maxHeadingLength bounds a line considered as a heading candidate.
const maxHeadingLength = 40

// Section is one labeled span of resume text.
type Section struct {
	Label string
	Text  string
}

// Sections is the ordered segmentation result, one entry per label.
type Sections []Section

// Get returns the text span for a label.
func (s Sections) Get(label string) (string, bool) {
	for _, sec := range s {
		if sec.Label == label {
			return sec.Text, true
		}
	}
	return "", false
}

// IsHeadingCandidate reports whether a line looks like a section heading:
// short and entirely upper-case, or containing a known heading keyword.
func IsHeadingCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if len(trimmed) < maxHeadingLength && isAllUpper(trimmed) {
		return true
	}
	return headingLabel(trimmed) != ""
}

// headingLabel returns the section label for a heading line, or "" when
// the line matches no known heading keyword.
func headingLabel(line string) string {
	upper := strings.ToUpper(strings.TrimSpace(line))
	if len(upper) >= maxHeadingLength*2 {
		return ""
	}
	for _, entry := range headingVocabulary {
		if strings.Contains(upper, entry.Keyword) {
			return entry.Label
		}
	}
	return ""
}

// isAllUpper reports whether a string contains at least one letter and
// no lower-case letters.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// SegmentSections splits raw resume text into labeled spans. Lines before
// the first recognized heading form the preamble. A repeated label has its
// spans concatenated in document order, so the result holds exactly one
// entry per label.
func SegmentSections(raw string) Sections {
	var sections Sections
	index := make(map[string]int)

	appendTo := func(label string, lines []string) {
		text := strings.TrimSpace(strings.Join(lines, "\n"))
		if text == "" {
			return
		}
		if i, ok := index[label]; ok {
			sections[i].Text += "\n" + text
			return
		}
		index[label] = len(sections)
		sections = append(sections, Section{Label: label, Text: text})
	}

	current := SectionPreamble
	var buf []string
	for _, line := range strings.Split(raw, "\n") {
		if IsHeadingCandidate(line) {
			if label := headingLabel(line); label != "" {
				appendTo(current, buf)
				current = label
				buf = buf[:0]
				continue
			}
		}
		buf = append(buf, line)
	}
	appendTo(current, buf)

	return sections
}
