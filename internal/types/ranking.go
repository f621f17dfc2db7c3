package types

// RankedCandidate pairs a candidate's position in the input with its similarity score
type RankedCandidate struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// CandidateMatch is a ranked candidate resolved to its document identifier
type CandidateMatch struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// SkippedDocument records a document that could not take part in a batch
type SkippedDocument struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// RankingResult is the outcome of ranking a batch of candidate documents
type RankingResult struct {
	Matched []CandidateMatch  `json:"matched"`
	Skipped []SkippedDocument `json:"skipped,omitempty"`
}
