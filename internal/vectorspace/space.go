// Package vectorspace builds shared-vocabulary TF-IDF vectors over a corpus of
// linguistically normalized documents.
package vectorspace

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Space is the result of vectorizing one corpus. Vectors[i] belongs to the
// i-th input document; vectors from different Spaces are not comparable.
type Space struct {
	Vocabulary []string
	Vectors    []types.TermVector
}

// Build vectorizes every document of the corpus jointly. Each document is a
// space-separated token sequence. Weights are raw term counts scaled by
// ln((1+N)/(1+df)) + 1 and each vector is L2-normalized. Documents with no
// tokens produce an empty (all-zero) vector.
func Build(corpus []string) *Space {
	counts := make([]map[string]int, len(corpus))
	docFreq := make(map[string]int)

	for i, doc := range corpus {
		tf := make(map[string]int)
		for _, tok := range strings.Fields(doc) {
			tf[tok]++
		}
		for tok := range tf {
			docFreq[tok]++
		}
		counts[i] = tf
	}

	vocabulary := make([]string, 0, len(docFreq))
	for tok := range docFreq {
		vocabulary = append(vocabulary, tok)
	}
	sort.Strings(vocabulary)

	n := float64(len(corpus))
	idf := make(map[string]float64, len(docFreq))
	for tok, df := range docFreq {
		idf[tok] = math.Log((1+n)/(1+float64(df))) + 1
	}

	vectors := make([]types.TermVector, len(corpus))
	for i, tf := range counts {
		vec := make(types.TermVector, len(tf))
		var norm float64
		for tok, c := range tf {
			w := float64(c) * idf[tok]
			vec[tok] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for tok := range vec {
				vec[tok] /= norm
			}
		}
		vectors[i] = vec
	}

	return &Space{Vocabulary: vocabulary, Vectors: vectors}
}

// BuildWithQuery vectorizes candidates together with a query document placed
// at the last position of the corpus, and returns the candidate vectors and
// the query vector separately.
func BuildWithQuery(candidates []string, query string) (*Space, []types.TermVector, types.TermVector) {
	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, candidates...)
	corpus = append(corpus, query)

	space := Build(corpus)
	last := len(space.Vectors) - 1
	return space, space.Vectors[:last], space.Vectors[last]
}
