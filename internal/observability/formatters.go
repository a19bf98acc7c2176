// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
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
//nolint:errcheck // writing to stdout; errors are not recoverable
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

// PrintJobDescription outputs a human-readable summary of the job description
// that will be scored against.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	if jd.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:  %s\n", jd.Title))
	}
	if jd.MinExperience > 0 || jd.MaxExperience > 0 {
		if jd.MaxExperience > 0 {
			sb.WriteString(fmt.Sprintf("Experience:  %d-%d years\n", jd.MinExperience, jd.MaxExperience))
		} else {
			sb.WriteString(fmt.Sprintf("Experience:  %d+ years\n", jd.MinExperience))
		}
	}

	if len(jd.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(jd.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", jd.RequiredSkills[i]))
		}
		if len(jd.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.RequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the overall score with its component breakdown.
func (p *Printer) PrintScoreReport(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score:  %d / 100\n\n", result.Overall))
	sb.WriteString(fmt.Sprintf("Hard Constraints:  %d\n", result.Breakdown.HardConstraints))
	sb.WriteString(fmt.Sprintf("Skill Match:       %d\n", result.Breakdown.SkillMatch))
	sb.WriteString(fmt.Sprintf("Semantic Match:    %d\n", result.Breakdown.SemanticMatch))

	if result.Metadata.ExperienceNote != "" {
		sb.WriteString(fmt.Sprintf("\nNote: %s\n", result.Metadata.ExperienceNote))
	}
	if len(result.Metadata.MatchedSkills) > 0 {
		matched := strings.Join(result.Metadata.MatchedSkills, ", ")
		if len(matched) > 40 {
			matched = matched[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMatched: %s\n", matched))
	}

	p.printBox("ATS SCORE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs any missing skills found during scoring.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(result *types.ScoreResult) {
	if result == nil {
		return
	}

	gaps := result.Gaps
	if len(gaps.MissingCritical) == 0 && len(gaps.MissingBonus) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SKILL GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder

	if len(gaps.MissingCritical) > 0 {
		sb.WriteString("Missing Critical:\n")
		for _, skill := range gaps.MissingCritical {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", skill))
		}
	}
	if len(gaps.MissingBonus) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Missing Bonus:\n")
		for _, skill := range gaps.MissingBonus {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}
