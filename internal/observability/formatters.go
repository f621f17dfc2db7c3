// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for human-readable CLI mode
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most limit runes, ending in "..." when cut
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// PrintSkills outputs the skills found in one document, technical skills first.
func (p *Printer) PrintSkills(document string, result types.SkillsResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document: %s\n\n", document))

	writeList := func(label string, skills []string) {
		sb.WriteString(label + ":\n")
		if len(skills) == 0 {
			sb.WriteString("  (none)\n")
			return
		}
		for _, s := range skills {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}
	writeList("Technical Skills", result.HardSkills)
	sb.WriteString("\n")
	writeList("Soft Skills", result.SoftSkills)

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked candidates with scores, followed by any skipped documents.
func (p *Printer) PrintRanking(result types.RankingResult) {
	var sb strings.Builder

	if len(result.Matched) == 0 {
		sb.WriteString("No candidates ranked\n")
	} else {
		sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(result.Matched)))

		count := min(len(result.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := result.Matched[i]
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.Name))
			sb.WriteString(fmt.Sprintf("    Score: %.4f  %s\n", m.Score, ranking.Describe(m.Score)))
		}
		if len(result.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more candidates\n", len(result.Matched)-maxItemsToShow))
		}
	}

	if len(result.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped %d documents:\n", len(result.Skipped)))
		for _, s := range result.Skipped {
			sb.WriteString(fmt.Sprintf("⚠ %s: %s\n", s.Name, s.Reason))
		}
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}
