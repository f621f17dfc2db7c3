// Package ranking orders candidate documents by their similarity to a job description.
package ranking

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/vectorspace"
)

// Rank scores every candidate vector against the query vector and sorts the
// result by score descending. Equal scores keep their input order.
func Rank(candidates []types.TermVector, query types.TermVector) []types.RankedCandidate {
	ranked := make([]types.RankedCandidate, len(candidates))
	for i, vec := range candidates {
		ranked[i] = types.RankedCandidate{
			Index: i,
			Score: CosineSimilarity(vec, query),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// RankDocuments vectorizes linguistically normalized candidates together with
// the normalized job description and ranks them. Zero candidates yield an
// empty ranking.
func RankDocuments(candidates []string, jobDescription string) []types.RankedCandidate {
	if len(candidates) == 0 {
		return []types.RankedCandidate{}
	}
	_, vectors, query := vectorspace.BuildWithQuery(candidates, jobDescription)
	return Rank(vectors, query)
}

// Describe gives a short label for a similarity score
func Describe(score float64) string {
	switch {
	case score >= 0.7:
		return fmt.Sprintf("Strong match (%.0f%%)", score*100)
	case score >= 0.4:
		return fmt.Sprintf("Moderate match (%.0f%%)", score*100)
	case score > 0:
		return fmt.Sprintf("Weak match (%.0f%%)", score*100)
	default:
		return "No overlap"
	}
}
