package types

// SkillMatch is a lexicon term confirmed present in a document
type SkillMatch struct {
	Term     string   `json:"term"`
	Category Category `json:"category"`
}

// SkillsResult holds the display-ready skill terms found in a document
type SkillsResult struct {
	HardSkills []string `json:"hard_skills"`
	SoftSkills []string `json:"soft_skills"`
}

// SkillCategoryGroup is one entry of the skills response returned to clients
type SkillCategoryGroup struct {
	Category string   `json:"Skill Category"`
	Skills   []string `json:"Skills"`
}

// Groups renders the result as the category list clients expect:
// soft skills first, then technical skills.
func (r SkillsResult) Groups() []SkillCategoryGroup {
	soft := r.SoftSkills
	if soft == nil {
		soft = []string{}
	}
	hard := r.HardSkills
	if hard == nil {
		hard = []string{}
	}
	return []SkillCategoryGroup{
		{Category: "Soft Skills", Skills: soft},
		{Category: "Technical Skills", Skills: hard},
	}
}
