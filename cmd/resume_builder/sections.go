package main

import (
	"context"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List selectable experience and project entries",
	Long:  "Prints the indexed experience and project entries. The indices are the ones accepted by render's exclusion flags.",
	RunE:  runSections,
}

var (
	sectionsInput             string
	sectionsUserID            string
	sectionsExcludeExperience []int
	sectionsExcludeProjects   []int
)

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsInput, "in", "i", "", "Path to resume data JSON file")
	sectionsCmd.Flags().StringVarP(&sectionsUserID, "user-id", "u", "", "User ID to load sections from the database")
	sectionsCmd.Flags().IntSliceVar(&sectionsExcludeExperience, "exclude-experience", nil, "Experience indices to mark as excluded")
	sectionsCmd.Flags().IntSliceVar(&sectionsExcludeProjects, "exclude-project", nil, "Project indices to mark as excluded")
	sectionsCmd.MarkFlagsMutuallyExclusive("in", "user-id")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Input:             sectionsInput,
		UserID:            sectionsUserID,
		ExcludeExperience: sectionsExcludeExperience,
		ExcludeProjects:   sectionsExcludeProjects,
	})
	if err != nil {
		return err
	}
	if err := requireSource(cfg); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := loadResumeData(ctx, cfg)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintSections(data, cfg.Selection())
	return nil
}
