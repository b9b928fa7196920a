package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"resume_data.schema.json",
	"syntax_report.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasType := schemaObj["type"]
			assert.True(t, hasSchema && hasType, "schema should declare $schema and type")
		})
	}
}

func TestResumeDataSchema(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{
			name:     "name only",
			document: `{"personalInfo": {"name": "Jane Doe"}}`,
		},
		{
			name: "list and string descriptions",
			document: `{
				"personalInfo": {"name": "Jane Doe", "email": "jane@example.com"},
				"experience": [
					{"companyName": "Acme", "position": "Engineer", "description": ["Built **things**"]},
					{"companyName": "Initech", "position": "Intern", "description": "Filed reports"}
				],
				"skills": {"Languages": ["Go", "Python"], "Cloud": null},
				"achievements": {"text": "[\"Winner: Hackathon\"]"}
			}`,
		},
		{
			name:      "missing personal info",
			document:  `{"education": []}`,
			wantError: true,
		},
		{
			name:      "missing name",
			document:  `{"personalInfo": {"email": "jane@example.com"}}`,
			wantError: true,
		},
		{
			name:      "description object",
			document:  `{"personalInfo": {"name": "Jane"}, "projects": [{"title": "X", "description": {"a": 1}}]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateBytes("resume_data.schema.json", []byte(tt.document))
			if tt.wantError {
				var validationErr *schemas.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.NotEmpty(t, validationErr.Errors)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSyntaxReportSchema(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{name: "valid report", document: `{"valid": true, "errors": [], "message": "LaTeX syntax appears valid"}`},
		{name: "invalid report", document: `{"valid": false, "errors": ["Missing \\end{document}"]}`},
		{name: "valid with errors", document: `{"valid": true, "errors": ["x"]}`, wantError: true},
		{name: "invalid without errors", document: `{"valid": false, "errors": []}`, wantError: true},
		{name: "missing errors", document: `{"valid": true}`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateBytes("syntax_report.schema.json", []byte(tt.document))
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
