// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the parsed profile.
func (p *Printer) PrintProfile(profile *types.UserProfile, data *types.ResumeData) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.PersonalInfo.Name))
	if profile.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.PersonalInfo.Email))
	}
	if data != nil {
		sb.WriteString(fmt.Sprintf("Status: %s (confidence %.2f)\n", data.Status, data.ConfidenceScore))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(profile.Education)))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i].Name))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked matches with scores and gaps.
func (p *Printer) PrintMatches(matches []types.MatchAnalysis) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total postings matched: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s at %s\n", i+1, m.Posting.Title, m.Posting.Company))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (skills %.2f, exp %.2f)\n",
			m.OverallScore, m.SubScores.Skills, m.SubScores.Experience))
		if len(m.SkillGaps) > 0 {
			gaps := strings.Join(m.SkillGaps, ", ")
			if len(gaps) > 40 {
				gaps = gaps[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Gaps: %s\n", gaps))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", sb.String())
}

// PrintSkillGapReport outputs a summary of the gap analysis.
func (p *Printer) PrintSkillGapReport(report *types.SkillGapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.TargetRole != "" {
		sb.WriteString(fmt.Sprintf("Target role: %s\n", report.TargetRole))
	}
	sb.WriteString(fmt.Sprintf("Match:       %d%%\n", report.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Readiness:   %s\n", report.Readiness))

	if len(report.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(report.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingSkills[i]))
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("SKILL GAP REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLearningPath outputs the milestone schedule of a learning path.
func (p *Printer) PrintLearningPath(path *types.LearningPath) {
	if path == nil || len(path.Milestones) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Timeline: %d months, %d hours/week\n\n", path.TimelineMonths, path.WeeklyHours))

	count := min(len(path.Milestones), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := path.Milestones[i]
		sb.WriteString(fmt.Sprintf("Month %d: %s\n", m.Month, strings.Join(m.Skills, ", ")))
	}
	if len(path.Milestones) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more months\n", len(path.Milestones)-maxItemsToShow))
	}

	p.printBox("LEARNING PATH", strings.TrimSuffix(sb.String(), "\n"))
}
