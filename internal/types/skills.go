package types

// SkillCategoryName identifies one of the fixed skill categories.
type SkillCategoryName string

// Skill categories, declared in render order.
const (
	SkillLanguages      SkillCategoryName = "Languages"
	SkillVisualization  SkillCategoryName = "Visualization"
	SkillCloud          SkillCategoryName = "Cloud"
	SkillFrameworks     SkillCategoryName = "Frameworks"
	SkillDatabase       SkillCategoryName = "Database"
	SkillTools          SkillCategoryName = "Tools"
	SkillWebdevelopment SkillCategoryName = "Webdevelopment"
)

// SkillCategoryOrder is the closed category enumeration in render order.
var SkillCategoryOrder = []SkillCategoryName{
	SkillLanguages,
	SkillVisualization,
	SkillCloud,
	SkillFrameworks,
	SkillDatabase,
	SkillTools,
	SkillWebdevelopment,
}

var skillDisplayLabels = map[SkillCategoryName]string{
	SkillLanguages:      "Languages",
	SkillVisualization:  "Data Analysis & Visualization",
	SkillCloud:          "Cloud",
	SkillFrameworks:     "Frameworks & Libraries",
	SkillDatabase:       "Database",
	SkillTools:          "Tools & Technologies",
	SkillWebdevelopment: "Web Development",
}

// DisplayLabel returns the human-readable label. Unknown names return themselves.
func (n SkillCategoryName) DisplayLabel() string {
	if label, ok := skillDisplayLabels[n]; ok {
		return label
	}
	return string(n)
}

// Valid reports whether n is one of the fixed categories.
func (n SkillCategoryName) Valid() bool {
	_, ok := skillDisplayLabels[n]
	return ok
}

// SkillCategory is a named list of skills.
type SkillCategory struct {
	Name   SkillCategoryName `json:"name" validate:"required,oneof=Languages Visualization Cloud Frameworks Database Tools Webdevelopment"`
	Skills []string          `json:"skills"`
}
