package types

// Document is an identified piece of raw text, typically one uploaded resume.
// Documents are not modified after extraction.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// TermVector maps vocabulary terms to non-negative weights.
// Vectors are only comparable when built within the same corpus.
type TermVector map[string]float64
