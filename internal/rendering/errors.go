// Package rendering provides functionality to render LaTeX resumes from structured section data.
package rendering

import "fmt"

// PreconditionError reports input that violates the assembler's contract, such as a missing name.
// It is never recovered from on the caller's behalf.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violated: %s", e.Message)
}

// RenderError represents a failure executing a section template
type RenderError struct {
	Section string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error in %s section: %s: %v", e.Section, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error in %s section: %s", e.Section, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
