// Package rendering provides functionality to render LaTeX resumes from structured section data.
package rendering

import (
	"fmt"
	"strings"
	"time"
)

// PresentLabel is shown in place of an end date for ongoing entries.
const PresentLabel = "Present"

// September is abbreviated "Sept" everywhere.
var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sept", "Oct", "Nov", "Dec",
}

// dateLayouts are tried in order. Parsed fields are used as written, never shifted to local time.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01",
}

// FormatDate renders a date as "Mon. YYYY". Empty input yields "".
// "present" (any case) yields PresentLabel. Unparseable input is returned trimmed but otherwise unchanged.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if strings.EqualFold(value, "present") {
		return PresentLabel
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return fmt.Sprintf("%s. %d", monthAbbreviations[t.Month()-1], t.Year())
		}
	}
	return value
}

// formatDateRange renders "start -- end". The end is PresentLabel when current or missing.
// The result is escaped since unparseable dates come back verbatim.
func formatDateRange(start, end string, current bool) string {
	endText := PresentLabel
	if !current {
		if formatted := FormatDate(end); formatted != "" {
			endText = formatted
		}
	}

	startText := FormatDate(start)
	if startText == "" {
		return EscapeLaTeX(endText)
	}
	return EscapeLaTeX(startText + " -- " + endText)
}
