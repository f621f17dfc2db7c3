package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	inlineSpace     = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText tidies extracted text: line endings become LF, control characters
// are dropped, runs of inline whitespace collapse to one space and at most one
// blank line separates paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	content = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}

	result := excessiveBlanks.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}
