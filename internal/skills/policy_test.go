package skills

import (
	"fmt"
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestLengthLimitPolicy_FilterThenTruncate(t *testing.T) {
	var terms []string
	for i := 0; i < 15; i++ {
		terms = append(terms, fmt.Sprintf("skill%02d", i))
	}
	terms = append([]string{"go", "sql"}, terms...)

	got := DefaultPolicy().Apply(terms)
	assert.Len(t, got, 10)
	assert.Equal(t, "Skill00", got[0])
	assert.Equal(t, "Skill09", got[9])
	assert.NotContains(t, got, "Go")
}

func TestLengthLimitPolicy_NoLimit(t *testing.T) {
	p := LengthLimitPolicy{MinLength: 0}
	assert.Equal(t, []string{"Go", "Sql"}, p.Apply([]string{"go", "sql"}))
}

func TestPassthroughPolicy(t *testing.T) {
	in := []string{"go"}
	out := PassthroughPolicy{}.Apply(in)
	assert.Equal(t, in, out)
	out[0] = "x"
	assert.Equal(t, "go", in[0])
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Python", Capitalize("python"))
	assert.Equal(t, "Machine learning", Capitalize("machine LEARNING"))
	assert.Equal(t, "Élan", Capitalize("élan"))
	assert.Equal(t, "", Capitalize(""))
}

func TestExtractor_Scenario(t *testing.T) {
	lex := types.NewSkillLexicon()
	lex.Add(types.CategoryHard, "python")
	lex.Add(types.CategorySoft, "teamwork")

	got := NewExtractor(nil).Extract("Skilled in Python and strong teamwork abilities", lex)
	assert.Equal(t, []string{"Python"}, got.HardSkills)
	assert.Equal(t, []string{"Teamwork"}, got.SoftSkills)

	raw := NewExtractor(PassthroughPolicy{}).Extract("Skilled in Python and strong teamwork abilities", lex)
	assert.Equal(t, []string{"python"}, raw.HardSkills)
	assert.Equal(t, []string{"teamwork"}, raw.SoftSkills)
}

func TestExtractor_EmptyLexicon(t *testing.T) {
	got := NewExtractor(nil).Extract("Skilled in Python", nil)
	assert.Empty(t, got.HardSkills)
	assert.Empty(t, got.SoftSkills)
}

func TestExtractor_TermInBothCategories(t *testing.T) {
	lex := types.NewSkillLexicon()
	lex.Add(types.CategoryHard, "project management", "python")
	lex.Add(types.CategorySoft, "project management")

	got := NewExtractor(PassthroughPolicy{}).Extract("Led project management in Python", lex)
	assert.Equal(t, []string{"project management", "python"}, got.HardSkills)
	assert.Equal(t, []string{"project management"}, got.SoftSkills)
	assert.NotNil(t, NewExtractor(nil).Extract("", lex).SoftSkills)
}
