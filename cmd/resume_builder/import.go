package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Store a resume data file as a new user",
	Long:  "Checks a resume data JSON file and stores its sections in the database under a new user ID.",
	RunE:  runImport,
}

var importInput string

func init() {
	importCmd.Flags().StringVarP(&importInput, "in", "i", "", "Path to resume data JSON file (required)")

	if err := importCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{Input: importInput})
	if err != nil {
		return err
	}

	raw, err := resume.LoadFile(cfg.Input, schemas.ResolveSchemaPath(schemas.ResumeDataSchema))
	if err != nil {
		return fmt.Errorf("failed to load resume data: %w", err)
	}
	// Reject records that could never render before storing them.
	data, err := resume.Normalize(raw)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	userID, err := database.ImportResume(ctx, raw)
	if err != nil {
		return err
	}

	warnMissingSections(data)
	_, _ = fmt.Fprintf(os.Stdout, "Imported resume for %s as user %s\n", data.PersonalInfo.Name, userID)
	return nil
}
