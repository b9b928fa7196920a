package resume

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// LoadFile loads raw section records from a JSON file.
// When schemaPath is non-empty the document is checked against it before decoding.
func LoadFile(path, schemaPath string) (*Raw, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	if schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, content); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("%s does not match the resume data schema", path),
				Cause:   err,
			}
		}
	}

	var raw Raw
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &raw, nil
}

// Load reads a resume data file and normalizes it
func Load(path, schemaPath string) (*types.ResumeData, error) {
	raw, err := LoadFile(path, schemaPath)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}
