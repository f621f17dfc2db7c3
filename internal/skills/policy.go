package skills

import (
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMinLength drops short, ambiguous terms from display
	DefaultMinLength = 5
	// DefaultLimit caps how many terms are displayed per category
	DefaultLimit = 10
)

// DisplayPolicy turns sorted matched terms into the list shown to users
type DisplayPolicy interface {
	Apply(terms []string) []string
}

// LengthLimitPolicy keeps terms of at least MinLength characters, truncates to
// the first Limit of them in their existing order and capitalizes each one.
// A zero Limit means no truncation.
type LengthLimitPolicy struct {
	MinLength int
	Limit     int
}

// DefaultPolicy returns the display policy used by the web endpoints
func DefaultPolicy() LengthLimitPolicy {
	return LengthLimitPolicy{MinLength: DefaultMinLength, Limit: DefaultLimit}
}

// Apply implements DisplayPolicy
func (p LengthLimitPolicy) Apply(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if utf8.RuneCountInString(term) < p.MinLength {
			continue
		}
		if p.Limit > 0 && len(out) >= p.Limit {
			break
		}
		out = append(out, Capitalize(term))
	}
	return out
}

// PassthroughPolicy returns terms unchanged
type PassthroughPolicy struct{}

// Apply implements DisplayPolicy
func (PassthroughPolicy) Apply(terms []string) []string {
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// Capitalize uppercases the first character and lowercases the rest
func Capitalize(term string) string {
	if term == "" {
		return ""
	}
	runes := []rune(term)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
