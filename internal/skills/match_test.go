package skills

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_WordBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		terms    []string
		expected []string
	}{
		{"Short term inside longer word", "gone fishing", []string{"go"}, []string{}},
		{"Short term as a word", "I use go daily", []string{"go"}, []string{"go"}},
		{"Case insensitive", "I know python well", []string{"Python"}, []string{"python"}},
		{"Term at text edges", "go", []string{"go"}, []string{"go"}},
		{"Punctuation is a boundary", "Languages: go, rust.", []string{"go", "rust"}, []string{"go", "rust"}},
		{"Multi-word phrase", "experience in machine learning systems", []string{"machine learning"}, []string{"machine learning"}},
		{"Phrase across line break", "machine\nlearning", []string{"machine learning"}, []string{"machine learning"}},
		{"Phrase not inside longer word", "machine learnings", []string{"machine learning"}, []string{}},
		{"Non-word edges", "wrote c++ and c# code", []string{"c++", "c#"}, []string{"c#", "c++"}},
		{"Later occurrence matches", "golang then go", []string{"go"}, []string{"go"}},
		{"Underscore is a word character", "my_go_script", []string{"go"}, []string{}},
		{"Unicode letters", "réseau café", []string{"café"}, []string{"café"}},
		{"Empty text", "", []string{"go"}, []string{}},
		{"Empty terms", "go", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Match(tt.text, tt.terms))
		})
	}
}

func TestMatch_DedupAndSort(t *testing.T) {
	text := "teamwork, python, sql and more python"
	got := Match(text, []string{"sql", "python", "Python ", "teamwork", "java"})
	assert.Equal(t, []string{"python", "sql", "teamwork"}, got)
}

func TestMatch_Deterministic(t *testing.T) {
	text := "Skilled in Python, SQL, Docker and Kubernetes"
	terms := []string{"kubernetes", "docker", "sql", "python"}
	first := Match(text, terms)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Match(text, terms))
	}
}

func TestMatchLexicon(t *testing.T) {
	lex := types.NewSkillLexicon()
	lex.Add(types.CategoryHard, "python")
	lex.Add(types.CategorySoft, "teamwork")

	got := MatchLexicon("Skilled in Python and strong teamwork abilities", lex)
	require.Len(t, got, 2)
	assert.Equal(t, types.SkillMatch{Term: "python", Category: types.CategoryHard}, got[0])
	assert.Equal(t, types.SkillMatch{Term: "teamwork", Category: types.CategorySoft}, got[1])
}

func TestMatchLexicon_Empty(t *testing.T) {
	assert.Empty(t, MatchLexicon("python", nil))
	assert.Empty(t, MatchLexicon("python", types.NewSkillLexicon()))
}
