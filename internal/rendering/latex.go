// Package rendering provides functionality to render LaTeX resumes from structured section data.
package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Assemble renders a complete LaTeX document from the resume sections.
//
// An empty name is the only hard failure and yields a *PreconditionError.
// Every other section is optional and omitted when it has nothing to show.
// Sections are emitted in a fixed order: heading, education, experience,
// projects, achievements, skills. Identical inputs produce identical output.
func Assemble(
	info types.PersonalInfo,
	education []types.EducationRecord,
	experience []types.ExperienceRecord,
	projects []types.ProjectRecord,
	skills []types.SkillCategory,
	achievements []types.AchievementEntry,
	selection types.Selection,
) (string, error) {
	if strings.TrimSpace(info.Name) == "" {
		return "", &PreconditionError{Message: "personal info name is required to generate a resume"}
	}

	renderers := []func() (string, error){
		func() (string, error) { return RenderHeading(info) },
		func() (string, error) { return RenderEducation(education) },
		func() (string, error) { return RenderExperience(experience, selection) },
		func() (string, error) { return RenderProjects(projects, selection) },
		func() (string, error) { return RenderAchievements(achievements) },
		func() (string, error) { return RenderSkills(skills) },
	}

	var result strings.Builder
	result.WriteString(Preamble)
	for _, render := range renderers {
		fragment, err := render()
		if err != nil {
			return "", err
		}
		result.WriteString(fragment)
	}
	result.WriteString(Epilogue)

	return result.String(), nil
}

// AssembleResume is Assemble over an aggregated ResumeData.
func AssembleResume(data *types.ResumeData, selection types.Selection) (string, error) {
	if data == nil {
		return "", &PreconditionError{Message: "resume data is required"}
	}
	return Assemble(data.PersonalInfo, data.Education, data.Experience, data.Projects, data.Skills, data.Achievements, selection)
}
