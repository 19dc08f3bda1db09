package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tonyzdev/jobparse"
)

// Compile-time interface verification.
var _ jobparse.RequirementWriter = (*RequirementService)(nil)

// RequirementService mirrors classified records into SQLite.
type RequirementService struct {
	db *DB
}

// NewRequirementService creates a new RequirementService.
func NewRequirementService(db *DB) *RequirementService {
	return &RequirementService{db: db}
}

// WriteRequirements replaces the stored records with records in one
// transaction.
func (s *RequirementService) WriteRequirements(ctx context.Context, records []*jobparse.RequirementRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM requirements"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO requirements (id, job_title, company, location, salary, job_type, education, major,
				experience, industry, apply_method, apply_url, url, position, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), r.JobTitle, r.Company, r.Location, r.Salary, r.JobType, r.Education, r.Major,
			r.Experience, r.Industry, r.ApplyMethod, r.ApplyURL, r.URL, i, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRequirements retrieves stored records in write order.
func (s *RequirementService) FindRequirements(ctx context.Context) ([]*jobparse.RequirementRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT job_title, company, location, salary, job_type, education, major,
			experience, industry, apply_method, apply_url, url
		FROM requirements
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*jobparse.RequirementRecord
	for rows.Next() {
		var r jobparse.RequirementRecord
		if err := rows.Scan(&r.JobTitle, &r.Company, &r.Location, &r.Salary, &r.JobType, &r.Education,
			&r.Major, &r.Experience, &r.Industry, &r.ApplyMethod, &r.ApplyURL, &r.URL); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}

	return records, rows.Err()
}
