package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a LaTeX resume",
	Long:  "Assembles a complete LaTeX document from a resume data file or a user's stored sections, then checks its structure.",
	RunE:  runRender,
}

var (
	renderInput             string
	renderUserID            string
	renderOutput            string
	renderSchema            string
	renderExcludeExperience []int
	renderExcludeProjects   []int
	renderSave              bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to resume data JSON file")
	renderCmd.Flags().StringVarP(&renderUserID, "user-id", "u", "", "User ID to load sections from the database")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output LaTeX file (defaults to stdout)")
	renderCmd.Flags().StringVar(&renderSchema, "schema", "", "Path to resume data JSON schema (optional)")
	renderCmd.Flags().IntSliceVar(&renderExcludeExperience, "exclude-experience", nil, "Experience indices to leave out, e.g. 1,2")
	renderCmd.Flags().IntSliceVar(&renderExcludeProjects, "exclude-project", nil, "Project indices to leave out, e.g. 0")
	renderCmd.Flags().BoolVar(&renderSave, "save", false, "Store the generated document in the database (requires --user-id)")
	renderCmd.MarkFlagsMutuallyExclusive("in", "user-id")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Input:             renderInput,
		UserID:            renderUserID,
		Schema:            renderSchema,
		Out:               renderOutput,
		ExcludeExperience: renderExcludeExperience,
		ExcludeProjects:   renderExcludeProjects,
		SaveDocument:      renderSave,
	})
	if err != nil {
		return err
	}
	if err := requireSource(cfg); err != nil {
		return err
	}
	if cfg.SaveDocument && cfg.UserID == "" {
		return fmt.Errorf("--save requires --user-id")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := loadResumeData(ctx, cfg)
	if err != nil {
		return err
	}

	selection := cfg.Selection()
	// Diagnostics stay off stdout when the document itself is written there.
	diagnostics := io.Writer(os.Stdout)
	if cfg.Out == "" {
		diagnostics = os.Stderr
	}
	printer := observability.NewPrinter(diagnostics)
	if cfg.Verbose {
		printer.PrintResumeSummary(data, selection)
	}
	warnMissingSections(data)

	document, err := rendering.AssembleResume(data, selection)
	if err != nil {
		var preconditionErr *rendering.PreconditionError
		if errors.As(err, &preconditionErr) {
			return fmt.Errorf("cannot render resume: %w", err)
		}
		return fmt.Errorf("failed to render resume: %w", err)
	}

	report, err := validation.ValidateSyntax(document)
	if err != nil {
		return fmt.Errorf("failed to check generated document: %w", err)
	}
	if cfg.Verbose {
		printer.PrintSyntaxReport(report)
	}

	if cfg.Out != "" {
		if err := writeOutput(cfg.Out, []byte(document)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered LaTeX resume to %s\n", cfg.Out)
	} else {
		_, _ = fmt.Fprint(os.Stdout, document)
	}

	if cfg.SaveDocument {
		if err := saveDocument(ctx, cfg, document, report); err != nil {
			return err
		}
	}

	if !report.Valid {
		for _, problem := range report.Errors {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", problem)
		}
		return fmt.Errorf("generated document failed syntax check with %d problem(s)", len(report.Errors))
	}
	return nil
}

func saveDocument(ctx context.Context, cfg *config.Config, document string, report *types.SyntaxReport) error {
	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.SaveDocument(ctx, userID, document, report)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "Saved document %s\n", id)
	return nil
}
