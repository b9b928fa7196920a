package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `{
	"personalInfo": {"name": "Jane Doe", "email": "jane@example.com"},
	"experience": [{"companyName": "Acme", "position": "Engineer", "startDate": "2021-01-01", "isCurrent": true, "description": "[\"Built things\"]"}]
}`

func writeResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	raw, err := LoadFile(writeResume(t, sampleResume), "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", raw.PersonalInfo.Name)
	require.Len(t, raw.Experience, 1)
	assert.Equal(t, []string{"Built things"}, raw.Experience[0].Description.Items)
}

func TestLoadFile_FileNotFound(t *testing.T) {
	_, err := LoadFile("nonexistent_file.json", "")
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	_, err := LoadFile(writeResume(t, "{ invalid json }"), "")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "failed to unmarshal JSON")
}

func TestLoadFile_SchemaCheck(t *testing.T) {
	schemaPath := schemas.ResolveSchemaPath(schemas.ResumeDataSchema)
	require.NotEmpty(t, schemaPath)

	_, err := LoadFile(writeResume(t, sampleResume), schemaPath)
	require.NoError(t, err)

	_, err = LoadFile(writeResume(t, `{"experience": []}`), schemaPath)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoad_Normalizes(t *testing.T) {
	data, err := Load(writeResume(t, sampleResume), "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", data.PersonalInfo.Name)
	assert.Equal(t, []string{"Built things"}, data.Experience[0].Description)
}
