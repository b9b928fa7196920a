// Package rendering provides functionality to render LaTeX resumes from structured section data.
package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// headingView is the escaped data for the heading block
type headingView struct {
	Name     string
	Contacts []string
}

// educationView is one escaped education entry
type educationView struct {
	Institution string
	Location    string
	Degree      string
	Dates       string
	GPA         string
}

// experienceView is one escaped experience entry
type experienceView struct {
	Company  string
	Location string
	Position string
	Dates    string
	Bullets  []string
}

// projectView is one escaped project entry
type projectView struct {
	Title        string
	Link         string
	Technologies string
	Bullets      []string
}

// skillLineView is one escaped skills category line
type skillLineView struct {
	Label  string
	Skills string
}

// headingLinks fixes the order links appear in the heading.
var headingLinks = []struct {
	label string
	url   func(types.Links) string
}{
	{"Portfolio", func(l types.Links) string { return l.Portfolio }},
	{"LinkedIn", func(l types.Links) string { return l.LinkedIn }},
	{"GitHub", func(l types.Links) string { return l.GitHub }},
	{"LeetCode", func(l types.Links) string { return l.LeetCode }},
}

// RenderHeading renders the name, contact line and profile links.
// The caller must already have checked that info.Name is non-empty.
func RenderHeading(info types.PersonalInfo) (string, error) {
	view := headingView{Name: EscapeLaTeX(strings.TrimSpace(info.Name))}

	for _, contact := range []string{info.Phone, info.Email} {
		if strings.TrimSpace(contact) != "" {
			view.Contacts = append(view.Contacts, EscapeLaTeX(strings.TrimSpace(contact)))
		}
	}
	for _, link := range headingLinks {
		if url := strings.TrimSpace(link.url(info.Links)); url != "" {
			view.Contacts = append(view.Contacts, hrefUnderline(url, link.label))
		}
	}

	return executeSection("heading", view)
}

// RenderEducation renders every education record in input order.
// Returns "" when there are no records.
func RenderEducation(records []types.EducationRecord) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	views := make([]educationView, 0, len(records))
	for _, rec := range records {
		degree := EscapeLaTeX(rec.Degree)
		if field := strings.TrimSpace(rec.FieldOfStudy); field != "" {
			degree += " in " + EscapeLaTeX(field)
		}
		views = append(views, educationView{
			Institution: EscapeLaTeX(rec.Institution),
			Location:    EscapeLaTeX(rec.InstitutionLocation),
			Degree:      degree,
			Dates:       formatDateRange(rec.StartDate, rec.EndDate, rec.IsCurrent),
			GPA:         EscapeLaTeX(strings.TrimSpace(rec.GPA)),
		})
	}

	return executeSection("education", views)
}

// RenderExperience renders the selected experience records.
// Returns "" when the selection leaves nothing to show.
func RenderExperience(records []types.ExperienceRecord, selection types.Selection) (string, error) {
	views := make([]experienceView, 0, len(records))
	for i, rec := range records {
		if !selection.IncludesExperience(i) {
			continue
		}
		views = append(views, experienceView{
			Company:  EscapeLaTeX(rec.CompanyName),
			Location: EscapeLaTeX(rec.CompanyLocation),
			Position: EscapeLaTeX(rec.Position),
			Dates:    formatDateRange(rec.StartDate, rec.EndDate, rec.IsCurrent),
			Bullets:  escapeNonBlank(rec.Description),
		})
	}
	if len(views) == 0 {
		return "", nil
	}

	return executeSection("experience", views)
}

// RenderProjects renders the selected project records.
// Structured description bullets win; Summary is used only when no bullet survives.
func RenderProjects(records []types.ProjectRecord, selection types.Selection) (string, error) {
	views := make([]projectView, 0, len(records))
	for i, rec := range records {
		if !selection.IncludesProject(i) {
			continue
		}

		view := projectView{
			Title:        EscapeLaTeX(rec.Title),
			Technologies: strings.Join(escapeNonBlank(rec.Technologies), ", "),
			Bullets:      escapeNonBlank(rec.Description),
		}
		if url := strings.TrimSpace(rec.GitHubURL); url != "" {
			view.Link = hrefUnderline(url, "GitHub")
		}
		if len(view.Bullets) == 0 && strings.TrimSpace(rec.Summary) != "" {
			view.Bullets = []string{EscapeLaTeX(strings.TrimSpace(rec.Summary))}
		}
		views = append(views, view)
	}
	if len(views) == 0 {
		return "", nil
	}

	return executeSection("projects", views)
}

// RenderSkills renders categories in the fixed enumeration order.
// Categories without any non-blank skill are left out; unknown names are ignored.
func RenderSkills(categories []types.SkillCategory) (string, error) {
	byName := make(map[types.SkillCategoryName][]string, len(categories))
	for _, c := range categories {
		if !c.Name.Valid() {
			continue
		}
		byName[c.Name] = append(byName[c.Name], c.Skills...)
	}

	var lines []skillLineView
	for _, name := range types.SkillCategoryOrder {
		skills := escapeNonBlank(byName[name])
		if len(skills) == 0 {
			continue
		}
		lines = append(lines, skillLineView{
			Label:  EscapeLaTeX(name.DisplayLabel()),
			Skills: strings.Join(skills, ", "),
		})
	}
	if len(lines) == 0 {
		return "", nil
	}

	return executeSection("skills", lines)
}

// RenderAchievements renders one bullet per entry, "title: description" when a description exists.
func RenderAchievements(entries []types.AchievementEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		item := EscapeLaTeX(entry.Title)
		if entry.Description != "" {
			item += ": " + EscapeLaTeX(entry.Description)
		}
		items = append(items, item)
	}

	return executeSection("achievements", items)
}

// escapeNonBlank trims and escapes each item, dropping blank ones.
func escapeNonBlank(items []string) []string {
	escaped := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			escaped = append(escaped, EscapeLaTeX(trimmed))
		}
	}
	return escaped
}

func hrefUnderline(url, label string) string {
	return `\href{` + EscapeURL(url) + `}{\underline{` + label + `}}`
}
