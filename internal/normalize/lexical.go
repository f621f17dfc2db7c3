// Package normalize converts raw document text into the canonical forms used
// by skill matching and vector modeling.
package normalize

import "strings"

// Lexical lowercases text and collapses whitespace runs to a single space.
// It never fails and is idempotent.
func Lexical(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
