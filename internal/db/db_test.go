package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_Sorted(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "migrations/001_resume_sections.sql", names[0])
	assert.IsIncreasing(t, names)
}

func TestMigrations_CreateEveryTable(t *testing.T) {
	script, err := migrationFiles.ReadFile("migrations/001_resume_sections.sql")
	require.NoError(t, err)

	for _, table := range []string{"users", "links", "education", "experience", "projects", "skills", "achievements", "documents"} {
		assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
	assert.NotContains(t, strings.ToUpper(string(script)), "DROP TABLE")
}

func TestDocumentType(t *testing.T) {
	doc := Document{Content: `\begin{document}\end{document}`, Valid: true}
	assert.True(t, doc.Valid)
	assert.Nil(t, doc.Errors)
}
