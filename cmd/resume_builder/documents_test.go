package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDocuments_RequiresUserID(t *testing.T) {
	withGlobals(t, "", "", false)
	documentsUserID = ""

	err := runDocuments(documentsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user-id is required")
}

func TestRunDocuments_InvalidUserID(t *testing.T) {
	withGlobals(t, "", "", false)
	documentsUserID = "not-a-uuid"
	t.Cleanup(func() { documentsUserID = "" })

	err := runDocuments(documentsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid UUID")
}

func TestRunDocuments_MissingDatabaseURL(t *testing.T) {
	withGlobals(t, "", "", false)
	t.Setenv(config.DatabaseURLEnv, "")
	documentsUserID = "550e8400-e29b-41d4-a716-446655440000"
	t.Cleanup(func() { documentsUserID = "" })

	err := runDocuments(documentsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestWriteDocumentList(t *testing.T) {
	created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	validID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	invalidID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	var buf bytes.Buffer
	writeDocumentList(&buf, []db.Document{
		{ID: validID, Valid: true, CreatedAt: created},
		{ID: invalidID, Valid: false, Errors: []string{"Unmatched closing brace }", "1 unclosed opening brace(s) {"}, CreatedAt: created},
	})

	assert.Equal(t,
		validID.String()+"  2024-03-05 14:30:00  valid\n"+
			invalidID.String()+"  2024-03-05 14:30:00  2 problem(s): Unmatched closing brace }; 1 unclosed opening brace(s) {\n",
		buf.String())
}

func TestWriteDocumentList_Empty(t *testing.T) {
	var buf bytes.Buffer
	writeDocumentList(&buf, nil)
	assert.Equal(t, "No saved documents\n", buf.String())
}
