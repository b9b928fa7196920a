// Package resume loads raw section records and shapes them into normalized resume data.
package resume

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/types"
)

var validate = validator.New()

// Normalize shapes raw records into ResumeData and checks required fields.
func Normalize(raw *Raw) (*types.ResumeData, error) {
	if raw == nil {
		return nil, &NormalizationError{Message: "raw resume records are nil"}
	}

	data := Shape(raw)
	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Shape converts raw records into ResumeData without validating them.
// Ordering is kept exactly as stored.
func Shape(raw *Raw) *types.ResumeData {
	data := &types.ResumeData{
		PersonalInfo: types.PersonalInfo{
			Name:  strings.TrimSpace(raw.PersonalInfo.Name),
			Email: strings.TrimSpace(raw.PersonalInfo.Email),
			Phone: strings.TrimSpace(raw.PersonalInfo.Phone),
		},
	}
	if raw.Links != nil {
		data.PersonalInfo.Links = types.Links{
			Portfolio: strings.TrimSpace(raw.Links.Portfolio),
			LinkedIn:  strings.TrimSpace(raw.Links.LinkedIn),
			GitHub:    strings.TrimSpace(raw.Links.GitHub),
			LeetCode:  strings.TrimSpace(raw.Links.LeetCode),
		}
	}

	for _, e := range raw.Education {
		data.Education = append(data.Education, types.EducationRecord{
			Institution:         strings.TrimSpace(e.Institution),
			InstitutionLocation: strings.TrimSpace(e.InstitutionLocation),
			Degree:              strings.TrimSpace(e.Degree),
			FieldOfStudy:        strings.TrimSpace(e.FieldOfStudy),
			StartDate:           strings.TrimSpace(e.StartDate),
			IsCurrent:           e.IsCurrent,
			EndDate:             strings.TrimSpace(e.EndDate),
			GPA:                 strings.TrimSpace(e.GPA),
		})
	}

	for _, e := range raw.Experience {
		data.Experience = append(data.Experience, types.ExperienceRecord{
			CompanyName:     strings.TrimSpace(e.CompanyName),
			CompanyLocation: strings.TrimSpace(e.CompanyLocation),
			Position:        strings.TrimSpace(e.Position),
			StartDate:       strings.TrimSpace(e.StartDate),
			IsCurrent:       e.IsCurrent,
			EndDate:         strings.TrimSpace(e.EndDate),
			Description:     bulletList(e.Description),
		})
	}

	for _, p := range raw.Projects {
		project := types.ProjectRecord{
			Title:        strings.TrimSpace(p.Title),
			Technologies: commaList(p.Technologies),
			GitHubURL:    strings.TrimSpace(p.GitHubRepository),
			LiveURL:      strings.TrimSpace(p.LiveLink),
		}
		// A plain-string description is kept whole as the summary fallback.
		if p.Description.IsText {
			project.Summary = strings.TrimSpace(p.Description.Text)
		} else {
			project.Description = p.Description.Items
		}
		data.Projects = append(data.Projects, project)
	}

	if raw.Skills != nil {
		data.Skills = skillCategories(raw.Skills)
	}

	if raw.Achievements != nil {
		for _, text := range bulletList(raw.Achievements.Text) {
			if strings.TrimSpace(text) == "" {
				continue
			}
			data.Achievements = append(data.Achievements, ParseAchievement(text))
		}
	}

	return data
}

// ParseAchievement splits "title: description" on the first colon.
// Without a colon the whole text is the title.
func ParseAchievement(text string) types.AchievementEntry {
	title, description, found := strings.Cut(text, ":")
	if !found {
		return types.AchievementEntry{Title: strings.TrimSpace(text)}
	}
	return types.AchievementEntry{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
}

// Validate checks required fields on normalized data.
func Validate(data *types.ResumeData) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &NormalizationError{Message: "failed to validate resume data", Cause: err}
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed '%s'", strings.TrimPrefix(fe.Namespace(), "ResumeData."), fe.Tag()))
	}
	return &NormalizationError{
		Message: fmt.Sprintf("invalid resume data: %s", strings.Join(problems, "; ")),
		Cause:   err,
	}
}

// skillCategories converts the per-column skills row into the fixed category order.
func skillCategories(row *RawSkills) []types.SkillCategory {
	columns := map[types.SkillCategoryName]FlexibleList{
		types.SkillLanguages:      row.Languages,
		types.SkillVisualization:  row.Visualization,
		types.SkillCloud:          row.Cloud,
		types.SkillFrameworks:     row.Frameworks,
		types.SkillDatabase:       row.Database,
		types.SkillTools:          row.Tools,
		types.SkillWebdevelopment: row.Webdevelopment,
	}

	var categories []types.SkillCategory
	for _, name := range types.SkillCategoryOrder {
		skills := commaList(columns[name])
		if len(skills) == 0 {
			continue
		}
		categories = append(categories, types.SkillCategory{Name: name, Skills: skills})
	}
	return categories
}

// bulletList returns list items as stored, or splits a plain string into one bullet per line.
func bulletList(f FlexibleList) []string {
	if !f.IsText {
		return f.Items
	}

	var bullets []string
	for _, line := range strings.Split(f.Text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "• ")
		line = strings.TrimPrefix(line, "- ")
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// commaList returns list items, or splits a plain string on commas. Blank entries are dropped.
func commaList(f FlexibleList) []string {
	source := f.Items
	if f.IsText {
		source = strings.Split(f.Text, ",")
	}

	var items []string
	for _, s := range source {
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, s)
		}
	}
	return items
}

// MissingSections names the optional sections that have nothing to render.
func MissingSections(data *types.ResumeData) []string {
	var missing []string
	if len(data.Education) == 0 {
		missing = append(missing, "Education")
	}
	if len(data.Experience) == 0 {
		missing = append(missing, "Experience")
	}
	if len(data.Projects) == 0 {
		missing = append(missing, "Projects")
	}
	if !hasSkills(data.Skills) {
		missing = append(missing, "Skills")
	}
	if len(data.Achievements) == 0 {
		missing = append(missing, "Achievements")
	}
	return missing
}

func hasSkills(categories []types.SkillCategory) bool {
	for _, c := range categories {
		for _, s := range c.Skills {
			if strings.TrimSpace(s) != "" {
				return true
			}
		}
	}
	return false
}
