// Package skills tags documents with categorized skill terms drawn from curated lexicons.
package skills

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/normalize"
	"github.com/jonathan/resume-screener/internal/types"
)

// Match returns the terms that occur in text as whole words, deduplicated and
// sorted ascending. Both text and terms are lexically normalized first.
func Match(text string, terms []string) []string {
	normalized := normalize.Lexical(text)
	if normalized == "" || len(terms) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(terms))
	matched := make([]string, 0)
	for _, term := range terms {
		term = normalize.Lexical(term)
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		if containsWord(normalized, term) {
			matched = append(matched, term)
		}
	}

	sort.Strings(matched)
	return matched
}

// MatchLexicon matches every category of the lexicon against text.
// Matches are ordered by category, then by term.
func MatchLexicon(text string, lexicon *types.SkillLexicon) []types.SkillMatch {
	var matches []types.SkillMatch
	for _, category := range types.Categories {
		for _, term := range Match(text, lexicon.Terms(category)) {
			matches = append(matches, types.SkillMatch{Term: term, Category: category})
		}
	}
	return matches
}

// containsWord reports whether term occurs in text with word boundaries on both ends.
// Only the first and last characters of the term are boundary checked, so
// multi-word phrases match literally.
func containsWord(text, term string) bool {
	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)

	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(term)

		if leftBoundary(text, start, first) && rightBoundary(text, end, last) {
			return true
		}

		// Advance by one rune so overlapping occurrences are still considered.
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
		if offset >= len(text) {
			return false
		}
	}
}

func leftBoundary(text string, start int, first rune) bool {
	if !isWordRune(first) || start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(prev)
}

func rightBoundary(text string, end int, last rune) bool {
	if !isWordRune(last) || end >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
