// Package main provides the entry point for the resume_builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_builder",
	Short:         "Resume Builder LaTeX generator",
	Long:          "Resume Builder turns per-user resume sections into a single-column LaTeX document and checks its structure before compilation.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath  string
	databaseURL string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "db-url", "", "Database URL (defaults to $DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
