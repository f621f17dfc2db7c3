package ranking

import (
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// CosineSimilarity returns the cosine of the angle between two term vectors,
// clamped to [0, 1]. It returns 0 when either vector is all-zero.
func CosineSimilarity(a, b types.TermVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	// Iterate the smaller vector for the dot product
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	var dot float64
	for term, w := range small {
		dot += w * large[term]
	}

	denom := magnitude(a) * magnitude(b)
	if denom == 0 {
		return 0.0
	}

	score := dot / denom
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

func magnitude(v types.TermVector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
