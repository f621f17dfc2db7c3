package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills("cv.pdf", types.SkillsResult{
		HardSkills: []string{"Python", "Kubernetes"},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED SKILLS")
	assert.Contains(t, output, "cv.pdf")
	assert.Contains(t, output, "• Python")
	assert.Contains(t, output, "• Kubernetes")
	assert.Contains(t, output, "(none)")
	assert.Less(t, strings.Index(output, "Technical Skills"), strings.Index(output, "Soft Skills"))
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(types.RankingResult{
		Matched: []types.CandidateMatch{
			{Name: "alice.pdf", Score: 0.8123},
			{Name: "bob.pdf", Score: 0},
		},
		Skipped: []types.SkippedDocument{{Name: "notes.txt", Reason: "unsupported file type"}},
	})
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE RANKING")
	assert.Contains(t, output, "#1  alice.pdf")
	assert.Contains(t, output, "Score: 0.8123")
	assert.Contains(t, output, "Strong match")
	assert.Contains(t, output, "No overlap")
	assert.Contains(t, output, "notes.txt: unsupported file type")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking(types.RankingResult{})
	assert.Contains(t, buf.String(), "No candidates ranked")
}

func TestPrintRanking_TruncatesList(t *testing.T) {
	var matched []types.CandidateMatch
	for i := 0; i < 15; i++ {
		matched = append(matched, types.CandidateMatch{Name: fmt.Sprintf("cv%02d.pdf", i), Score: 0.5})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking(types.RankingResult{Matched: matched})
	output := buf.String()

	assert.Contains(t, output, "cv09.pdf")
	assert.NotContains(t, output, "cv10.pdf")
	assert.Contains(t, output, "... and 5 more candidates")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
}
