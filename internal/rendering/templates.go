// Package rendering provides functionality to render LaTeX resumes from structured section data.
package rendering

import (
	"strings"
	"text/template"
)

// Section templates use [[ ]] delimiters because LaTeX groups routinely produce "{{".
// Every value reaching a template has already been escaped.
const (
	headingTemplate = `%----------HEADING----------
\begin{center}
    \textbf{\Huge \scshape [[.Name]]} \\ \vspace{1pt}
    \small [[join .Contacts " $|$ "]]
\end{center}

`

	educationTemplate = `%-----------EDUCATION-----------
\section{Education}
  \resumeSubHeadingListStart
[[- range .]]
    \resumeSubheading
      {[[.Institution]]}{[[.Location]]}
      {[[.Degree]]}{[[.Dates]]}
[[- if .GPA]]
      \resumeItemListStart
        \resumeItem{\textbf{GPA}: [[.GPA]]}
      \resumeItemListEnd
[[- end]]
[[- end]]
  \resumeSubHeadingListEnd

`

	experienceTemplate = `%-----------EXPERIENCE-----------
\section{Experience}
  \resumeSubHeadingListStart
[[- range .]]
    \resumeSubheading
      {[[.Company]]}{[[.Location]]}
      {[[.Position]]}{[[.Dates]]}
[[- template "bullets" .Bullets]]
[[- end]]
  \resumeSubHeadingListEnd

`

	projectsTemplate = `%-----------PROJECTS-----------
\section{Projects}
  \resumeSubHeadingListStart
[[- range .]]
    \resumeSubheading
      {\textbf{[[.Title]]}}{[[.Link]]}
      {[[.Technologies]]}{}
[[- template "bullets" .Bullets]]
[[- end]]
  \resumeSubHeadingListEnd

`

	bulletsTemplate = `[[define "bullets"]][[if .]]
      \resumeItemListStart
[[- range .]]
        \resumeItem{[[.]]}
[[- end]]
      \resumeItemListEnd
[[- end]][[end]]`

	achievementsTemplate = `%-----------ACHIEVEMENTS-----------
\section{Achievements}
\begin{itemize}[itemsep=1pt,label=\scriptsize\textbullet]
[[- range .]]
  \resumeItem{[[.]]}
[[- end]]
\end{itemize}

`

	skillsTemplate = `%-----------TECHNICAL SKILLS-----------
\section{Technical Skills}
 \begin{itemize}[leftmargin=0.15in, label={}]
    \small{\item{
     [[range $i, $c := .]][[if $i]] \\
     [[end]]\textbf{[[$c.Label]]}{: [[$c.Skills]]}[[end]]
    }}
 \end{itemize}

`
)

var sectionTemplates = template.Must(parseSectionTemplates())

func parseSectionTemplates() (*template.Template, error) {
	root := template.New("sections").Delims("[[", "]]").Funcs(template.FuncMap{
		"join": strings.Join,
	})

	named := []struct {
		name string
		body string
	}{
		{"heading", headingTemplate},
		{"education", educationTemplate},
		{"experience", experienceTemplate},
		{"projects", projectsTemplate},
		{"achievements", achievementsTemplate},
		{"skills", skillsTemplate},
	}

	if _, err := root.Parse(bulletsTemplate); err != nil {
		return nil, &RenderError{Section: "bullets", Message: "failed to parse template", Cause: err}
	}
	for _, n := range named {
		if _, err := root.New(n.name).Parse(n.body); err != nil {
			return nil, &RenderError{Section: n.name, Message: "failed to parse template", Cause: err}
		}
	}
	return root, nil
}

// executeSection runs one named section template against already-escaped view data.
func executeSection(name string, data any) (string, error) {
	var result strings.Builder
	if err := sectionTemplates.ExecuteTemplate(&result, name, data); err != nil {
		return "", &RenderError{
			Section: name,
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}
