// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Links holds the optional profile links shown in the heading.
type Links struct {
	Portfolio string `json:"portfolio,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	LeetCode  string `json:"leetcode,omitempty"`
}

// PersonalInfo is the single per-user identity record. Name gates document generation.
type PersonalInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
	Links Links  `json:"links"`
}

// EducationRecord is one education entry. Dates are YYYY-MM-DD strings.
type EducationRecord struct {
	Institution         string `json:"institution" validate:"required"`
	InstitutionLocation string `json:"institution_location,omitempty"`
	Degree              string `json:"degree" validate:"required"`
	FieldOfStudy        string `json:"field_of_study,omitempty"`
	StartDate           string `json:"start_date" validate:"required"`
	IsCurrent           bool   `json:"is_current"`
	EndDate             string `json:"end_date,omitempty" validate:"required_unless=IsCurrent true"`
	GPA                 string `json:"gpa,omitempty"` // optional passthrough, never validated
}

// ExperienceRecord is one employment entry with its bullet list.
type ExperienceRecord struct {
	CompanyName     string   `json:"company_name" validate:"required"`
	CompanyLocation string   `json:"company_location,omitempty"`
	Position        string   `json:"position" validate:"required"`
	StartDate       string   `json:"start_date,omitempty"`
	IsCurrent       bool     `json:"is_current"`
	EndDate         string   `json:"end_date,omitempty" validate:"required_unless=IsCurrent true"`
	Description     []string `json:"description"`
}

// ProjectRecord is one project entry.
type ProjectRecord struct {
	Title        string   `json:"title" validate:"required"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"github_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`

	// Summary is a flat description used only when Description has no entries.
	Summary string `json:"summary,omitempty"`
}

// AchievementEntry is a titled achievement line.
type AchievementEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ResumeData aggregates every section for one user, already normalized.
type ResumeData struct {
	PersonalInfo PersonalInfo       `json:"personal_info"`
	Education    []EducationRecord  `json:"education" validate:"dive"`
	Experience   []ExperienceRecord `json:"experience" validate:"dive"`
	Projects     []ProjectRecord    `json:"projects" validate:"dive"`
	Skills       []SkillCategory    `json:"skills" validate:"dive"`
	Achievements []AchievementEntry `json:"achievements"`
}
