package skills

import "github.com/jonathan/resume-screener/internal/types"

// Extractor matches documents against a lexicon and renders the result with a display policy
type Extractor struct {
	policy DisplayPolicy
}

// NewExtractor creates an Extractor. A nil policy falls back to DefaultPolicy.
func NewExtractor(policy DisplayPolicy) *Extractor {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Extractor{policy: policy}
}

// Extract returns the display-ready hard and soft skills found in text.
// An empty or nil lexicon yields empty lists.
func (e *Extractor) Extract(text string, lexicon *types.SkillLexicon) types.SkillsResult {
	hard := []string{}
	soft := []string{}
	for _, m := range MatchLexicon(text, lexicon) {
		switch m.Category {
		case types.CategoryHard:
			hard = append(hard, m.Term)
		case types.CategorySoft:
			soft = append(soft, m.Term)
		}
	}
	return types.SkillsResult{
		HardSkills: e.policy.Apply(hard),
		SoftSkills: e.policy.Apply(soft),
	}
}
