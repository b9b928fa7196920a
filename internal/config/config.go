// Package config provides configuration loading and validation for the CLI.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/viper"
)

// DatabaseURLEnv is the environment variable consulted when no database URL is configured
const DatabaseURLEnv = "DATABASE_URL"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Source
	Input  string `json:"input,omitempty" mapstructure:"input"`     // Path to resume data JSON file
	UserID string `json:"user_id,omitempty" mapstructure:"user_id"` // User UUID (DB-based runs)
	Schema string `json:"schema,omitempty" mapstructure:"schema"`   // Path to resume data JSON schema

	// Output
	Out string `json:"out,omitempty" mapstructure:"out"` // Path to write the .tex document

	// Selection
	ExcludeExperience []int `json:"exclude_experience,omitempty" mapstructure:"exclude_experience"` // Experience indices to leave out
	ExcludeProjects   []int `json:"exclude_projects,omitempty" mapstructure:"exclude_projects"`     // Project indices to leave out

	// Behavior
	SaveDocument bool   `json:"save_document,omitempty" mapstructure:"save_document"` // Store the generated document in the database
	Verbose      bool   `json:"verbose,omitempty" mapstructure:"verbose"`             // Print detailed debug information
	DatabaseURL  string `json:"database_url,omitempty" mapstructure:"database_url"`   // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType(configType(path))
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	return &cfg, nil
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Input != "" && c.UserID != "" {
		return fmt.Errorf("config error: 'input' and 'user_id' are mutually exclusive")
	}

	if c.UserID != "" {
		if _, err := uuid.Parse(c.UserID); err != nil {
			return fmt.Errorf("config error: 'user_id' is not a valid UUID: %w", err)
		}
	}

	for _, i := range c.ExcludeExperience {
		if i < 0 {
			return fmt.Errorf("config error: 'exclude_experience' indices must be non-negative")
		}
	}
	for _, i := range c.ExcludeProjects {
		if i < 0 {
			return fmt.Errorf("config error: 'exclude_projects' indices must be non-negative")
		}
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" && result.UserID == "" {
		result.Input = defaults.Input
		result.UserID = defaults.UserID
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Slice fields: use default if nil
	if result.ExcludeExperience == nil {
		result.ExcludeExperience = defaults.ExcludeExperience
	}
	if result.ExcludeProjects == nil {
		result.ExcludeProjects = defaults.ExcludeProjects
	}

	// Bool fields: a default of true wins over unset
	result.SaveDocument = result.SaveDocument || defaults.SaveDocument
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ResolveDatabaseURL returns the configured database URL, falling back to DATABASE_URL
func (c *Config) ResolveDatabaseURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return os.Getenv(DatabaseURLEnv)
}

// Selection converts the exclusion lists into a render selection
func (c *Config) Selection() types.Selection {
	return types.NewSelection(c.ExcludeExperience, c.ExcludeProjects)
}
