package lexicon

import (
	"context"
	"encoding/json"
	"os"

	"github.com/jonathan/resume-screener/internal/schemas"
)

// lexiconSchema describes a JSON lexicon document
const lexiconSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["terms"],
  "properties": {
    "category": {"type": "string", "enum": ["hard", "soft"]},
    "terms": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

type jsonLexicon struct {
	Category string   `json:"category,omitempty"`
	Terms    []string `json:"terms"`
}

// JSONSource reads a {"terms": [...]} document validated against the lexicon schema
type JSONSource struct {
	Path string
}

// Name implements Source
func (s *JSONSource) Name() string { return s.Path }

// Load implements Source
func (s *JSONSource) Load(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &UnavailableError{Source: s.Path, Cause: err}
	}

	if err := schemas.ValidateJSONString(lexiconSchema, string(data)); err != nil {
		return nil, &UnavailableError{Source: s.Path, Cause: err}
	}

	var doc jsonLexicon
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &UnavailableError{Source: s.Path, Cause: err}
	}
	return cleanTerms(doc.Terms), nil
}
