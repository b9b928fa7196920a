package types

// Selection marks experience and project entries by position index.
// Indices absent from a map are included; only an explicit false excludes.
type Selection struct {
	Experience map[int]bool `json:"experience,omitempty"`
	Projects   map[int]bool `json:"projects,omitempty"`
}

// NewSelection builds a Selection that excludes the given indices.
func NewSelection(excludedExperience, excludedProjects []int) Selection {
	sel := Selection{}
	if len(excludedExperience) > 0 {
		sel.Experience = make(map[int]bool, len(excludedExperience))
		for _, i := range excludedExperience {
			sel.Experience[i] = false
		}
	}
	if len(excludedProjects) > 0 {
		sel.Projects = make(map[int]bool, len(excludedProjects))
		for _, i := range excludedProjects {
			sel.Projects[i] = false
		}
	}
	return sel
}

// IncludesExperience reports whether the experience entry at index i is selected.
func (s Selection) IncludesExperience(i int) bool {
	return included(s.Experience, i)
}

// IncludesProject reports whether the project entry at index i is selected.
func (s Selection) IncludesProject(i int) bool {
	return included(s.Projects, i)
}

func included(m map[int]bool, i int) bool {
	v, ok := m[i]
	return !ok || v
}
