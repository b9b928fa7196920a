package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// resolveConfig merges command flags over the optional config file and validates the result
func resolveConfig(flags config.Config) (*config.Config, error) {
	flags.DatabaseURL = databaseURL
	flags.Verbose = verbose

	merged := flags
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if err := fileCfg.Validate(); err != nil {
			return nil, err
		}
		merged = flags.MergeWithDefaults(*fileCfg)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// requireSource checks that exactly one of input file or user ID is set
func requireSource(cfg *config.Config) error {
	if cfg.Input == "" && cfg.UserID == "" {
		return fmt.Errorf("one of --in or --user-id is required")
	}
	return nil
}

// connect opens the database named by the config or DATABASE_URL
func connect(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	dsn := cfg.ResolveDatabaseURL()
	if dsn == "" {
		return nil, fmt.Errorf("database URL is required: use --db-url or set %s", config.DatabaseURLEnv)
	}
	return db.Connect(ctx, dsn)
}

// loadResumeData reads resume sections from a file or from the database
func loadResumeData(ctx context.Context, cfg *config.Config) (*types.ResumeData, error) {
	if cfg.Input != "" {
		schemaPath := cfg.Schema
		if schemaPath == "" {
			schemaPath = schemas.ResolveSchemaPath(schemas.ResumeDataSchema)
		}
		if schemaPath == "" {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: resume data schema not found, skipping schema check\n")
		}
		data, err := resume.Load(cfg.Input, schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load resume data: %w", err)
		}
		return data, nil
	}

	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	database, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	data, err := database.LoadResumeData(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume data for user %s: %w", userID, err)
	}
	return data, nil
}

// warnMissingSections prints one warning naming the empty optional sections
func warnMissingSections(data *types.ResumeData) {
	if missing := resume.MissingSections(data); len(missing) > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: no entries for %s\n", strings.Join(missing, ", "))
	}
}

// writeOutput writes content to path, creating the parent directory
func writeOutput(path string, content []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
