// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"strings"
)

// Category identifies which lexicon a skill term belongs to
type Category string

const (
	CategoryHard Category = "hard"
	CategorySoft Category = "soft"
)

// Categories lists every known category in display order of the lexicon files
var Categories = []Category{CategoryHard, CategorySoft}

// SkillLexicon maps a category to a set of lowercase, trimmed skill terms.
// The zero value is an empty lexicon and is safe to read.
type SkillLexicon struct {
	terms map[Category]map[string]struct{}
}

// NewSkillLexicon creates an empty lexicon
func NewSkillLexicon() *SkillLexicon {
	return &SkillLexicon{terms: make(map[Category]map[string]struct{})}
}

// Add inserts terms into a category. Terms are lowercased and trimmed;
// empty terms are dropped and duplicates collapse.
func (l *SkillLexicon) Add(category Category, terms ...string) {
	if l.terms == nil {
		l.terms = make(map[Category]map[string]struct{})
	}
	set, ok := l.terms[category]
	if !ok {
		set = make(map[string]struct{})
		l.terms[category] = set
	}
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		set[term] = struct{}{}
	}
}

// Terms returns the terms of a category sorted ascending
func (l *SkillLexicon) Terms(category Category) []string {
	if l == nil {
		return nil
	}
	set := l.terms[category]
	terms := make([]string, 0, len(set))
	for term := range set {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Len returns the number of terms in a category
func (l *SkillLexicon) Len(category Category) int {
	if l == nil {
		return 0
	}
	return len(l.terms[category])
}

// IsEmpty reports whether the lexicon holds no terms at all
func (l *SkillLexicon) IsEmpty() bool {
	if l == nil {
		return true
	}
	for _, set := range l.terms {
		if len(set) > 0 {
			return false
		}
	}
	return true
}
