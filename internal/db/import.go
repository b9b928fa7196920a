package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/resume"
)

// ImportResume stores raw section records as a new user in a single transaction.
// Entries keep their slice order through sort_order.
func (db *DB) ImportResume(ctx context.Context, raw *resume.Raw) (uuid.UUID, error) {
	if raw == nil {
		return uuid.Nil, fmt.Errorf("failed to import resume: no records")
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO users (name, email, phone)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		 RETURNING id`,
		raw.PersonalInfo.Name, raw.PersonalInfo.Email, raw.PersonalInfo.Phone,
	).Scan(&userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if raw.Links != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO links (user_id, portfolio, linkedin, github, leetcode)
			 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))`,
			userID, raw.Links.Portfolio, raw.Links.LinkedIn, raw.Links.GitHub, raw.Links.LeetCode,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert links: %w", err)
		}
	}

	for i, e := range raw.Education {
		_, err = tx.Exec(ctx,
			`INSERT INTO education (user_id, sort_order, institution, institution_location, degree,
			                        field_of_study, start_date, is_current, end_date, gpa)
			 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''),
			         NULLIF($7, '')::date, $8, NULLIF($9, '')::date, NULLIF($10, ''))`,
			userID, i, e.Institution, e.InstitutionLocation, e.Degree,
			e.FieldOfStudy, e.StartDate, e.IsCurrent, e.EndDate, e.GPA,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert education %d: %w", i, err)
		}
	}

	for i, e := range raw.Experience {
		_, err = tx.Exec(ctx,
			`INSERT INTO experience (user_id, sort_order, company_name, company_location, position,
			                         start_date, is_current, end_date, description)
			 VALUES ($1, $2, $3, NULLIF($4, ''), $5,
			         NULLIF($6, '')::date, $7, NULLIF($8, '')::date, $9)`,
			userID, i, e.CompanyName, e.CompanyLocation, e.Position,
			e.StartDate, e.IsCurrent, e.EndDate, e.Description,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert experience %d: %w", i, err)
		}
	}

	for i, p := range raw.Projects {
		_, err = tx.Exec(ctx,
			`INSERT INTO projects (user_id, sort_order, title, description, technologies,
			                       github_repository, live_link)
			 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))`,
			userID, i, p.Title, p.Description, p.Technologies, p.GitHubRepository, p.LiveLink,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert project %d: %w", i, err)
		}
	}

	if s := raw.Skills; s != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO skills (user_id, languages, visualization, cloud, frameworks, database, tools, webdevelopment)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			userID, s.Languages, s.Visualization, s.Cloud, s.Frameworks, s.Database, s.Tools, s.Webdevelopment,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert skills: %w", err)
		}
	}

	if raw.Achievements != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO achievements (user_id, text) VALUES ($1, $2)`,
			userID, raw.Achievements.Text,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert achievements: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return userID, nil
}

// DeleteUser removes a user and every section row (cascades)
func (db *DB) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
