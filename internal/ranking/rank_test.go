package ranking

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/vectorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     types.TermVector
		expected float64
	}{
		{"Identical", types.TermVector{"go": 1, "sql": 2}, types.TermVector{"go": 1, "sql": 2}, 1.0},
		{"Orthogonal", types.TermVector{"go": 1}, types.TermVector{"sql": 1}, 0.0},
		{"Zero candidate", types.TermVector{}, types.TermVector{"go": 1}, 0.0},
		{"Nil query", types.TermVector{"go": 1}, nil, 0.0},
		{"Explicit zeros", types.TermVector{"go": 0}, types.TermVector{"go": 1}, 0.0},
		{"Scaled", types.TermVector{"go": 2}, types.TermVector{"go": 5}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRank_StableTies(t *testing.T) {
	query := types.TermVector{"go": 1}
	same := types.TermVector{"go": 1, "sql": 1}
	candidates := []types.TermVector{{"rust": 1}, same, {"go": 1}, same}

	ranked := Rank(candidates, query)
	require.Len(t, ranked, 4)
	assert.Equal(t, 2, ranked[0].Index)
	assert.Equal(t, 1, ranked[1].Index)
	assert.Equal(t, 3, ranked[2].Index)
	assert.Equal(t, 0, ranked[3].Index)
	assert.Equal(t, 0.0, ranked[3].Score)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, types.TermVector{"go": 1}))
	ranked := RankDocuments(nil, "backend")
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRankDocuments_Scenario(t *testing.T) {
	jd := "senior backend engineer database experience"
	candidates := []string{"database expert backend engineer", "frontend designer"}

	ranked := RankDocuments(candidates, jd)
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].Index)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, 0.0, ranked[1].Score)
}

func TestRankDocuments_SelfSimilarity(t *testing.T) {
	jd := "backend engineer database"
	ranked := RankDocuments([]string{"frontend", jd}, jd)
	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].Index)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
}

func TestRankDocuments_EmptyCandidateText(t *testing.T) {
	ranked := RankDocuments([]string{"", "backend"}, "backend engineer")
	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].Index)
	assert.Equal(t, 0, ranked[1].Index)
	assert.Equal(t, 0.0, ranked[1].Score)
}

func TestRank_ScoresInRange(t *testing.T) {
	_, vectors, query := vectorspace.BuildWithQuery(
		[]string{"go rust go", "python", "go python rust sql"}, "go sql")
	for _, rc := range Rank(vectors, query) {
		assert.GreaterOrEqual(t, rc.Score, 0.0)
		assert.LessOrEqual(t, rc.Score, 1.0)
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Strong match (90%)", Describe(0.9))
	assert.Equal(t, "Moderate match (50%)", Describe(0.5))
	assert.Equal(t, "Weak match (10%)", Describe(0.1))
	assert.Equal(t, "No overlap", Describe(0))
}
