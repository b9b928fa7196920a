// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintResumeSummary outputs the loaded sections and what the selection leaves in.
func (p *Printer) PrintResumeSummary(data *types.ResumeData, sel types.Selection) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:         %s\n", data.PersonalInfo.Name))
	if data.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:        %s\n", data.PersonalInfo.Email))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Education:    %d\n", len(data.Education)))
	sb.WriteString(fmt.Sprintf("Experience:   %d (%d selected)\n", len(data.Experience), countSelected(len(data.Experience), sel.IncludesExperience)))
	sb.WriteString(fmt.Sprintf("Projects:     %d (%d selected)\n", len(data.Projects), countSelected(len(data.Projects), sel.IncludesProject)))
	sb.WriteString(fmt.Sprintf("Skills:       %d categories\n", len(data.Skills)))
	sb.WriteString(fmt.Sprintf("Achievements: %d", len(data.Achievements)))

	p.printBox("LOADED RESUME DATA", sb.String())
}

func countSelected(n int, includes func(int) bool) int {
	count := 0
	for i := 0; i < n; i++ {
		if includes(i) {
			count++
		}
	}
	return count
}

// PrintSections outputs the indexed experience and project entries.
// Indices are the ones accepted by the exclusion flags.
func (p *Printer) PrintSections(data *types.ResumeData, sel types.Selection) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Experience:\n")
	if len(data.Experience) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, e := range data.Experience {
		sb.WriteString(fmt.Sprintf("  %s [%d] %s - %s\n", mark(sel.IncludesExperience(i)), i, e.CompanyName, e.Position))
	}

	sb.WriteString("\nProjects:\n")
	if len(data.Projects) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, proj := range data.Projects {
		sb.WriteString(fmt.Sprintf("  %s [%d] %s\n", mark(sel.IncludesProject(i)), i, proj.Title))
	}

	p.printBox("SELECTABLE ENTRIES", strings.TrimSuffix(sb.String(), "\n"))
}

func mark(included bool) string {
	if included {
		return "✓"
	}
	return "✗"
}

// PrintSyntaxReport outputs the structural check result for a document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSyntaxReport(report *types.SyntaxReport) {
	if report == nil {
		return
	}

	if report.Valid {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ "+report.Message)
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(report.Errors)))

	count := min(len(report.Errors), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", report.Errors[i]))
	}
	if len(report.Errors) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Errors)-maxItemsToShow))
	}

	p.printBox("LATEX SYNTAX PROBLEMS", strings.TrimSuffix(sb.String(), "\n"))
}
