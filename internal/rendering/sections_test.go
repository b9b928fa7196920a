package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeading_ContactsAndLinks(t *testing.T) {
	info := types.PersonalInfo{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "555-1234",
		Links: types.Links{GitHub: "https://github.com/jane"},
	}

	out, err := RenderHeading(info)
	require.NoError(t, err)
	assert.Contains(t, out, `\textbf{\Huge \scshape Jane Doe} \\ \vspace{1pt}`)
	assert.Contains(t, out, `\small 555-1234 $|$ jane@example.com $|$ \href{https://github.com/jane}{\underline{GitHub}}`)
	assert.NotContains(t, out, "Portfolio")
	assert.NotContains(t, out, "LinkedIn")
	assert.NotContains(t, out, "LeetCode")
}

func TestRenderHeading_LinkOrder(t *testing.T) {
	info := types.PersonalInfo{
		Name: "Jane",
		Links: types.Links{
			LeetCode:  "https://leetcode.com/jane",
			GitHub:    "https://github.com/jane",
			LinkedIn:  "https://linkedin.com/in/jane",
			Portfolio: "https://jane.dev",
		},
	}

	out, err := RenderHeading(info)
	require.NoError(t, err)

	portfolio := strings.Index(out, "Portfolio")
	linkedin := strings.Index(out, "LinkedIn")
	github := strings.Index(out, "GitHub")
	leetcode := strings.Index(out, "LeetCode")
	require.True(t, portfolio > 0 && linkedin > 0 && github > 0 && leetcode > 0)
	assert.Less(t, portfolio, linkedin)
	assert.Less(t, linkedin, github)
	assert.Less(t, github, leetcode)
}

func TestRenderHeading_SkipsBlankContacts(t *testing.T) {
	out, err := RenderHeading(types.PersonalInfo{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Contains(t, out, `\small jane@example.com`+"\n")
	assert.NotContains(t, out, "$|$")
}

func TestRenderHeading_EscapesName(t *testing.T) {
	out, err := RenderHeading(types.PersonalInfo{Name: "Jane & John_Doe"})
	require.NoError(t, err)
	assert.Contains(t, out, `Jane \& John\_Doe`)
}

func TestRenderEducation_Empty(t *testing.T) {
	out, err := RenderEducation(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderEducation_ExactFragment(t *testing.T) {
	records := []types.EducationRecord{{
		Institution:         "MIT",
		InstitutionLocation: "Cambridge, MA",
		Degree:              "B.S.",
		FieldOfStudy:        "Computer Science",
		StartDate:           "2016-09-01",
		EndDate:             "2020-05-15",
	}}

	out, err := RenderEducation(records)
	require.NoError(t, err)

	expected := `%-----------EDUCATION-----------
\section{Education}
  \resumeSubHeadingListStart
    \resumeSubheading
      {MIT}{Cambridge, MA}
      {B.S. in Computer Science}{Sept. 2016 -- May. 2020}
  \resumeSubHeadingListEnd

`
	assert.Equal(t, expected, out)
}

func TestRenderEducation_CurrentAndGPA(t *testing.T) {
	records := []types.EducationRecord{
		{Institution: "First U", Degree: "M.S.", StartDate: "2022-09-01", IsCurrent: true, GPA: "3.9/4.0"},
		{Institution: "Second U", Degree: "B.S.", StartDate: "2018-09-01", EndDate: "2022-06-01"},
	}

	out, err := RenderEducation(records)
	require.NoError(t, err)
	assert.Contains(t, out, "{M.S.}{Sept. 2022 -- Present}")
	assert.Contains(t, out, `\resumeItem{\textbf{GPA}: 3.9/4.0}`)
	assert.Equal(t, 1, strings.Count(out, "GPA"))
	assert.Less(t, strings.Index(out, "First U"), strings.Index(out, "Second U"), "input order is kept")
}

func TestRenderExperience_ExactFragment(t *testing.T) {
	records := []types.ExperienceRecord{{
		CompanyName:     "Acme",
		CompanyLocation: "NYC",
		Position:        "Engineer",
		StartDate:       "2020-01-06",
		IsCurrent:       true,
		Description:     []string{"Built X", "   ", "Led **team**"},
	}}

	out, err := RenderExperience(records, types.Selection{})
	require.NoError(t, err)

	expected := `%-----------EXPERIENCE-----------
\section{Experience}
  \resumeSubHeadingListStart
    \resumeSubheading
      {Acme}{NYC}
      {Engineer}{Jan. 2020 -- Present}
      \resumeItemListStart
        \resumeItem{Built X}
        \resumeItem{Led \textbf{team}}
      \resumeItemListEnd
  \resumeSubHeadingListEnd

`
	assert.Equal(t, expected, out)
}

func TestRenderExperience_NoBulletsOmitsItemList(t *testing.T) {
	records := []types.ExperienceRecord{{CompanyName: "Acme", Position: "Intern", StartDate: "2019-06-01", EndDate: "2019-08-31", Description: []string{"", " "}}}

	out, err := RenderExperience(records, types.Selection{})
	require.NoError(t, err)
	assert.Contains(t, out, "{Intern}{Jun. 2019 -- Aug. 2019}")
	assert.NotContains(t, out, `\resumeItemListStart`)
}

func TestRenderExperience_SelectionFilter(t *testing.T) {
	records := []types.ExperienceRecord{
		{CompanyName: "Kept Corp", Position: "A", StartDate: "2020-01-01", IsCurrent: true},
		{CompanyName: "Dropped Inc", Position: "B", StartDate: "2018-01-01", EndDate: "2019-01-01"},
	}

	out, err := RenderExperience(records, types.Selection{Experience: map[int]bool{1: false}})
	require.NoError(t, err)
	assert.Contains(t, out, "Kept Corp")
	assert.NotContains(t, out, "Dropped Inc")
}

func TestRenderExperience_AllExcluded(t *testing.T) {
	records := []types.ExperienceRecord{{CompanyName: "Acme", Position: "A", StartDate: "2020-01-01", IsCurrent: true}}

	out, err := RenderExperience(records, types.NewSelection([]int{0}, nil))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderProjects_TitleLinkTechnologies(t *testing.T) {
	records := []types.ProjectRecord{{
		Title:        "Resume_Builder",
		GitHubURL:    "https://github.com/x/y",
		Technologies: []string{"Go", " ", "C#"},
		Description:  []string{"Renders **LaTeX**"},
	}}

	out, err := RenderProjects(records, types.Selection{})
	require.NoError(t, err)
	assert.Contains(t, out, `\section{Projects}`)
	assert.Contains(t, out, `{\textbf{Resume\_Builder}}{\href{https://github.com/x/y}{\underline{GitHub}}}`)
	assert.Contains(t, out, `{Go, C\#}{}`)
	assert.Contains(t, out, `\resumeItem{Renders \textbf{LaTeX}}`)
}

func TestRenderProjects_NoGitHubLink(t *testing.T) {
	out, err := RenderProjects([]types.ProjectRecord{{Title: "Solo"}}, types.Selection{})
	require.NoError(t, err)
	assert.Contains(t, out, `{\textbf{Solo}}{}`)
	assert.NotContains(t, out, `\href`)
}

func TestRenderProjects_SummaryFallback(t *testing.T) {
	out, err := RenderProjects([]types.ProjectRecord{{Title: "P", Summary: "A flat 100% description"}}, types.Selection{})
	require.NoError(t, err)
	assert.Contains(t, out, `\resumeItem{A flat 100\% description}`)
}

func TestRenderProjects_BulletsTakePrecedenceOverSummary(t *testing.T) {
	records := []types.ProjectRecord{{Title: "P", Description: []string{"Structured bullet"}, Summary: "Flat summary"}}

	out, err := RenderProjects(records, types.Selection{})
	require.NoError(t, err)
	assert.Contains(t, out, "Structured bullet")
	assert.NotContains(t, out, "Flat summary")
}

func TestRenderProjects_SelectionFilter(t *testing.T) {
	records := []types.ProjectRecord{{Title: "Alpha"}, {Title: "Beta"}, {Title: "Gamma"}}

	out, err := RenderProjects(records, types.NewSelection(nil, []int{0, 2}))
	require.NoError(t, err)
	assert.NotContains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.NotContains(t, out, "Gamma")

	out, err = RenderProjects(records, types.NewSelection(nil, []int{0, 1, 2}))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderSkills_ExactFragment(t *testing.T) {
	categories := []types.SkillCategory{
		{Name: types.SkillTools, Skills: []string{"Git"}},
		{Name: types.SkillLanguages, Skills: []string{"Go", "", "Python"}},
		{Name: types.SkillCloud, Skills: []string{}},
	}

	out, err := RenderSkills(categories)
	require.NoError(t, err)

	expected := `%-----------TECHNICAL SKILLS-----------
\section{Technical Skills}
 \begin{itemize}[leftmargin=0.15in, label={}]
    \small{\item{
     \textbf{Languages}{: Go, Python} \\
     \textbf{Tools \& Technologies}{: Git}
    }}
 \end{itemize}

`
	assert.Equal(t, expected, out)
}

func TestRenderSkills_EmptyAndUnknown(t *testing.T) {
	out, err := RenderSkills([]types.SkillCategory{
		{Name: types.SkillCloud, Skills: []string{" "}},
		{Name: "Cooking", Skills: []string{"Pasta"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderSkills_UnknownCategoryDropped(t *testing.T) {
	out, err := RenderSkills([]types.SkillCategory{
		{Name: "Cooking", Skills: []string{"Pasta"}},
		{Name: types.SkillTools, Skills: []string{"Git"}},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Git")
	assert.NotContains(t, out, "Pasta")
	assert.NotContains(t, out, "Cooking")
}

func TestRenderSkills_DisplayLabelsEscaped(t *testing.T) {
	out, err := RenderSkills([]types.SkillCategory{{Name: types.SkillVisualization, Skills: []string{"Pandas"}}})
	require.NoError(t, err)
	assert.Contains(t, out, `\textbf{Data Analysis \& Visualization}{: Pandas}`)
}

func TestRenderAchievements(t *testing.T) {
	entries := []types.AchievementEntry{
		{Title: "Winner", Description: "Hackathon 2023"},
		{Title: "Dean's List"},
	}

	out, err := RenderAchievements(entries)
	require.NoError(t, err)
	assert.Contains(t, out, `\section{Achievements}`)
	assert.Contains(t, out, "  \\resumeItem{Winner: Hackathon 2023}\n  \\resumeItem{Dean's List}\n\\end{itemize}")
}

func TestRenderAchievements_Empty(t *testing.T) {
	out, err := RenderAchievements(nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
