package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

// SaveDocument stores a generated document together with its syntax report
func (db *DB) SaveDocument(ctx context.Context, userID uuid.UUID, content string, report *types.SyntaxReport) (uuid.UUID, error) {
	valid := false
	errs := []string{}
	if report != nil {
		valid = report.Valid
		if report.Errors != nil {
			errs = report.Errors
		}
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO documents (user_id, content, valid, errors)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, content, valid, errs,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document: %w", err)
	}
	return id, nil
}

// GetLatestDocument retrieves the most recent document for a user, or nil when none exists
func (db *DB) GetLatestDocument(ctx context.Context, userID uuid.UUID) (*Document, error) {
	var d Document
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, content, valid, errors, created_at
		 FROM documents WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&d.ID, &d.UserID, &d.Content, &d.Valid, &d.Errors, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest document: %w", err)
	}
	return &d, nil
}

// ListDocuments retrieves a user's documents, newest first, without their content
func (db *DB) ListDocuments(ctx context.Context, userID uuid.UUID, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, valid, errors, created_at
		 FROM documents WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.Valid, &d.Errors, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
