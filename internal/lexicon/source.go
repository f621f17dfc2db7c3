// Package lexicon loads curated skill term lists from spreadsheets, text and
// JSON files, or PostgreSQL.
package lexicon

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrLexiconUnavailable is matched by *UnavailableError
var ErrLexiconUnavailable = errors.New("skill lexicon unavailable")

// UnavailableError reports a lexicon source that could not be read
type UnavailableError struct {
	Source string
	Cause  error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill lexicon %s unavailable: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("skill lexicon %s unavailable", e.Source)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrLexiconUnavailable
}

// Source loads the lowercase, trimmed terms of one lexicon
type Source interface {
	Load(ctx context.Context) ([]string, error)
	// Name identifies the source in logs and errors
	Name() string
}

// OpenFile picks a file-backed source from the file extension:
// .xlsx spreadsheets, .json documents, and anything else as one term per line (or CSV).
func OpenFile(path string) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return &XLSXSource{Path: path}
	case ".json":
		return &JSONSource{Path: path}
	default:
		return &TextSource{Path: path}
	}
}

// cleanTerms lowercases, trims and drops empty values
func cleanTerms(values []string) []string {
	terms := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			terms = append(terms, v)
		}
	}
	return terms
}
