// Package rendering provides functionality to render LaTeX resumes from structured section data.
package rendering

import (
	"regexp"
	"strings"
)

// boldPattern matches paired **...** spans. Non-greedy so adjacent spans stay separate.
var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// EscapeLaTeX escapes user text for running text and table cells.
// Special characters: & % $ # _ ~ ^
// Braces and backslashes pass through untouched; the syntax validator catches imbalance.
// After escaping, **text** spans become \textbf{text}.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	escaped := escapeSpecialChars(text)
	return boldPattern.ReplaceAllString(escaped, `\textbf{${1}}`)
}

func escapeSpecialChars(text string) string {
	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '$':
			result.WriteString(`\$`)
		case '#':
			result.WriteString(`\#`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// urlReplacer makes a URL safe inside \href{...}. Characters that would break
// grouping are percent-encoded, and LaTeX comment/parameter characters are escaped.
var urlReplacer = strings.NewReplacer(
	`\`, `\%5C`,
	`{`, `\%7B`,
	`}`, `\%7D`,
	` `, `\%20`,
	`%`, `\%`,
	`#`, `\#`,
)

// EscapeURL escapes a URL for use as the first argument of \href.
func EscapeURL(url string) string {
	return urlReplacer.Replace(strings.TrimSpace(url))
}
