package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

// ErrUserNotFound is returned when no personal info row exists for a user
var ErrUserNotFound = errors.New("user not found")

// dateColumn renders a DATE column as YYYY-MM-DD, or empty when NULL.
const dateColumn = "COALESCE(to_char(%s, 'YYYY-MM-DD'), '')"

// GetPersonalInfo retrieves the user row
func (db *DB) GetPersonalInfo(ctx context.Context, userID uuid.UUID) (*resume.RawPersonalInfo, error) {
	var info resume.RawPersonalInfo
	err := db.pool.QueryRow(ctx,
		`SELECT name, COALESCE(email, ''), COALESCE(phone, '')
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&info.Name, &info.Email, &info.Phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get personal info: %w", err)
	}
	return &info, nil
}

// GetLinks retrieves the links row, or nil when the user has none
func (db *DB) GetLinks(ctx context.Context, userID uuid.UUID) (*resume.RawLinks, error) {
	var links resume.RawLinks
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(portfolio, ''), COALESCE(linkedin, ''), COALESCE(github, ''), COALESCE(leetcode, '')
		 FROM links WHERE user_id = $1`,
		userID,
	).Scan(&links.Portfolio, &links.LinkedIn, &links.GitHub, &links.LeetCode)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return &links, nil
}

// ListEducation retrieves education rows in stored order
func (db *DB) ListEducation(ctx context.Context, userID uuid.UUID) ([]resume.RawEducation, error) {
	rows, err := db.pool.Query(ctx,
		fmt.Sprintf(`SELECT institution, COALESCE(institution_location, ''), degree, COALESCE(field_of_study, ''),
		        %s, is_current, %s, COALESCE(gpa, '')
		 FROM education WHERE user_id = $1
		 ORDER BY sort_order, created_at`,
			fmt.Sprintf(dateColumn, "start_date"), fmt.Sprintf(dateColumn, "end_date")),
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	var records []resume.RawEducation
	for rows.Next() {
		var e resume.RawEducation
		if err := rows.Scan(&e.Institution, &e.InstitutionLocation, &e.Degree, &e.FieldOfStudy,
			&e.StartDate, &e.IsCurrent, &e.EndDate, &e.GPA); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

// ListExperience retrieves experience rows in stored order
func (db *DB) ListExperience(ctx context.Context, userID uuid.UUID) ([]resume.RawExperience, error) {
	rows, err := db.pool.Query(ctx,
		fmt.Sprintf(`SELECT company_name, COALESCE(company_location, ''), position,
		        %s, is_current, %s, description
		 FROM experience WHERE user_id = $1
		 ORDER BY sort_order, created_at`,
			fmt.Sprintf(dateColumn, "start_date"), fmt.Sprintf(dateColumn, "end_date")),
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	var records []resume.RawExperience
	for rows.Next() {
		var e resume.RawExperience
		if err := rows.Scan(&e.CompanyName, &e.CompanyLocation, &e.Position,
			&e.StartDate, &e.IsCurrent, &e.EndDate, &e.Description); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

// ListProjects retrieves project rows in stored order
func (db *DB) ListProjects(ctx context.Context, userID uuid.UUID) ([]resume.RawProject, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, description, technologies, COALESCE(github_repository, ''), COALESCE(live_link, '')
		 FROM projects WHERE user_id = $1
		 ORDER BY sort_order, created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var records []resume.RawProject
	for rows.Next() {
		var p resume.RawProject
		if err := rows.Scan(&p.Title, &p.Description, &p.Technologies,
			&p.GitHubRepository, &p.LiveLink); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// GetSkills retrieves the skills row, or nil when the user has none
func (db *DB) GetSkills(ctx context.Context, userID uuid.UUID) (*resume.RawSkills, error) {
	var s resume.RawSkills
	err := db.pool.QueryRow(ctx,
		`SELECT languages, visualization, cloud, frameworks, database, tools, webdevelopment
		 FROM skills WHERE user_id = $1`,
		userID,
	).Scan(&s.Languages, &s.Visualization, &s.Cloud, &s.Frameworks, &s.Database, &s.Tools, &s.Webdevelopment)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skills: %w", err)
	}
	return &s, nil
}

// GetAchievements retrieves the achievements row, or nil when the user has none
func (db *DB) GetAchievements(ctx context.Context, userID uuid.UUID) (*resume.RawAchievements, error) {
	var a resume.RawAchievements
	err := db.pool.QueryRow(ctx,
		`SELECT text FROM achievements WHERE user_id = $1`,
		userID,
	).Scan(&a.Text)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	return &a, nil
}

// LoadRaw fetches every section for a user concurrently.
// Returns ErrUserNotFound when the user row does not exist.
func (db *DB) LoadRaw(ctx context.Context, userID uuid.UUID) (*resume.Raw, error) {
	var (
		raw      resume.Raw
		personal *resume.RawPersonalInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		personal, err = db.GetPersonalInfo(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		raw.Links, err = db.GetLinks(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		raw.Education, err = db.ListEducation(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		raw.Experience, err = db.ListExperience(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		raw.Projects, err = db.ListProjects(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		raw.Skills, err = db.GetSkills(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		raw.Achievements, err = db.GetAchievements(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if personal == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	raw.PersonalInfo = *personal
	return &raw, nil
}

// LoadResumeData fetches and normalizes every section for a user
func (db *DB) LoadResumeData(ctx context.Context, userID uuid.UUID) (*types.ResumeData, error) {
	raw, err := db.LoadRaw(ctx, userID)
	if err != nil {
		return nil, err
	}
	return resume.Normalize(raw)
}
