package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tonyzdev/jobparse"
)

// Compile-time interface verification.
var (
	_ jobparse.PostingStore  = (*PostingService)(nil)
	_ jobparse.PostingFinder = (*PostingService)(nil)
)

// PostingService mirrors a run's postings into SQLite. A run is one
// transaction: Open begins it and clears the previous run, Commit makes the
// new postings visible, Abort rolls back.
type PostingService struct {
	db       *DB
	tx       *sql.Tx
	position int
}

// NewPostingService creates a new PostingService.
func NewPostingService(db *DB) *PostingService {
	return &PostingService{db: db}
}

// Open begins the run transaction.
func (s *PostingService) Open(ctx context.Context) error {
	if s.tx != nil {
		return jobparse.Errorf(jobparse.EINVALID, "posting mirror already open")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM postings"); err != nil {
		_ = tx.Rollback()
		return err
	}

	s.tx = tx
	s.position = 0
	return nil
}

// Save inserts the posting into the run transaction.
func (s *PostingService) Save(ctx context.Context, p *jobparse.JobPosting) error {
	if s.tx == nil {
		return jobparse.Errorf(jobparse.EINVALID, "posting mirror not open")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	record, err := json.Marshal(p)
	if err != nil {
		return err
	}

	var method any
	if p.ApplyMethod != jobparse.ApplyUnset {
		method = string(p.ApplyMethod)
	}

	_, err = s.tx.ExecContext(ctx, `
		INSERT INTO postings (id, filename, job_title, company, location, salary, job_type, scraped_at,
			apply_method, apply_url, description_hash, record, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), p.Filename, nullable(p.JobTitle), nullable(p.Company), nullable(p.Location),
		nullable(p.Salary), nullable(p.JobType), nullable(p.ScrapedAt), method, nullable(p.ApplyURL),
		hashContent(jobparse.Value(p.FullDescription)), string(record), s.position,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	s.position++
	return nil
}

// Commit commits the run transaction.
func (s *PostingService) Commit() error {
	if s.tx == nil {
		return jobparse.Errorf(jobparse.EINVALID, "posting mirror not open")
	}
	tx := s.tx
	s.tx = nil
	return tx.Commit()
}

// Abort rolls back the run transaction. It is a no-op when no run is open.
func (s *PostingService) Abort() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	return tx.Rollback()
}

// FindPostingByFilename retrieves a committed posting by its capture name.
func (s *PostingService) FindPostingByFilename(ctx context.Context, filename string) (*jobparse.JobPosting, error) {
	var record string
	err := s.db.QueryRowContext(ctx, `
		SELECT record FROM postings WHERE filename = ?
	`, filename).Scan(&record)

	if err == sql.ErrNoRows {
		return nil, jobparse.Errorf(jobparse.ENOTFOUND, "posting %q not found", filename)
	}
	if err != nil {
		return nil, err
	}

	return decodeRecord(record)
}

// FindPostings retrieves committed postings in save order.
func (s *PostingService) FindPostings(ctx context.Context) ([]*jobparse.JobPosting, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT record FROM postings ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []*jobparse.JobPosting
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		p, err := decodeRecord(record)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}

	return postings, rows.Err()
}

// DescriptionHash returns the stored description hash of a posting.
func (s *PostingService) DescriptionHash(ctx context.Context, filename string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, "SELECT description_hash FROM postings WHERE filename = ?", filename).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", jobparse.Errorf(jobparse.ENOTFOUND, "posting %q not found", filename)
	}
	return hash, err
}

func decodeRecord(record string) (*jobparse.JobPosting, error) {
	var p jobparse.JobPosting
	if err := json.Unmarshal([]byte(record), &p); err != nil {
		return nil, jobparse.Errorf(jobparse.EINTERNAL, "decode stored posting: %v", err)
	}
	return &p, nil
}
