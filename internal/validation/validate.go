// Package validation provides structural checks over LaTeX document text.
package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Document boundary markers that must both be present.
const (
	DocumentBegin = `\begin{document}`
	DocumentEnd   = `\end{document}`
)

// Finding messages reported in SyntaxReport.Errors
const (
	MsgUnmatchedClosingBrace = "Unmatched closing brace }"
	MsgMissingDocumentBegin  = `Missing document begin marker (\begin{document})`
	MsgMissingDocumentEnd    = `Missing document end marker (\end{document})`
	MsgSyntaxValid           = "LaTeX syntax appears valid"
)

// ValidateSyntax checks brace balance and document boundary markers.
//
// All findings are collected; the scan never stops at the first one. A closing
// brace with no open group is reported once, and any groups still open at the
// end are reported as a single count. Structural defects are returned in the
// report, never as an error. Only empty input is rejected with *PreconditionError.
func ValidateSyntax(text string) (*types.SyntaxReport, error) {
	if text == "" {
		return nil, &PreconditionError{Message: "LaTeX code is required"}
	}

	findings := []string{}

	unmatchedClose, unclosed := scanBraces(text)
	if unmatchedClose {
		findings = append(findings, MsgUnmatchedClosingBrace)
	}
	if unclosed > 0 {
		findings = append(findings, fmt.Sprintf("%d unclosed opening brace(s) {", unclosed))
	}

	if !strings.Contains(text, DocumentBegin) {
		findings = append(findings, MsgMissingDocumentBegin)
	}
	if !strings.Contains(text, DocumentEnd) {
		findings = append(findings, MsgMissingDocumentEnd)
	}

	if len(findings) > 0 {
		return &types.SyntaxReport{Valid: false, Errors: findings}, nil
	}
	return &types.SyntaxReport{Valid: true, Errors: findings, Message: MsgSyntaxValid}, nil
}

// scanBraces counts every literal { and } in text, including escaped or commented ones.
// An unmatched close is flagged and ignored so later groups are still counted.
func scanBraces(text string) (unmatchedClose bool, unclosed int) {
	depth := 0
	for _, r := range text {
		switch r {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				unmatchedClose = true
				continue
			}
			depth--
		}
	}
	return unmatchedClose, depth
}

// ValidateFile reads a .tex file and runs ValidateSyntax over its contents.
func ValidateFile(texPath string) (*types.SyntaxReport, error) {
	content, err := os.ReadFile(texPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FileReadError{
				Message: fmt.Sprintf("LaTeX file not found: %s", texPath),
				Cause:   err,
			}
		}
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to read LaTeX file: %s", texPath),
			Cause:   err,
		}
	}

	return ValidateSyntax(string(content))
}
