package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a LaTeX file's structure",
	Long:  "Checks brace balance and document begin/end markers in a LaTeX file. Exits non-zero when problems are found.",
	RunE:  runValidate,
}

var (
	validateInput  string
	validateOutput string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to LaTeX file (required)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to output SyntaxReport JSON file (optional)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	report, err := validation.ValidateFile(validateInput)
	if err != nil {
		var fileErr *validation.FileReadError
		var preconditionErr *validation.PreconditionError
		if errors.As(err, &fileErr) || errors.As(err, &preconditionErr) {
			return fmt.Errorf("validation failed: %w", err)
		}
		return fmt.Errorf("failed to validate LaTeX: %w", err)
	}

	if validateOutput != "" {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report to JSON: %w", err)
		}
		if err := writeOutput(validateOutput, jsonBytes); err != nil {
			return err
		}
		checkReportSchema(validateOutput)
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintSyntaxReport(report)
	}

	if report.Valid {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", report.Message)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation found %d problem(s)\n", len(report.Errors))
	for _, problem := range report.Errors {
		_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", problem)
	}
	if validateOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", validateOutput)
	}

	// Return error to indicate problems were found (exit code 1)
	return fmt.Errorf("validation found %d problem(s)", len(report.Errors))
}

// checkReportSchema validates a written report against its schema. Failures only warn.
func checkReportSchema(path string) {
	schemaPath := schemas.ResolveSchemaPath(schemas.SyntaxReportSchema)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Generated report does not validate against schema: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}
}
