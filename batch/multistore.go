package batch

import (
	"context"
	"errors"

	"github.com/tonyzdev/jobparse"
)

// Ensure MultiStore implements jobparse.PostingStore at compile time.
var _ jobparse.PostingStore = (*MultiStore)(nil)

// MultiStore fans store operations out to several stores in order, so that
// file output and a database mirror are written by the same run.
type MultiStore struct {
	stores []jobparse.PostingStore
}

// NewMultiStore creates a MultiStore over stores.
func NewMultiStore(stores ...jobparse.PostingStore) *MultiStore {
	return &MultiStore{stores: stores}
}

// Open opens every store. If one fails, the stores already opened are
// aborted.
func (m *MultiStore) Open(ctx context.Context) error {
	for i, s := range m.stores {
		if err := s.Open(ctx); err != nil {
			abortAll(m.stores[:i])
			return err
		}
	}
	return nil
}

// Save saves the posting to every store, stopping at the first failure.
func (m *MultiStore) Save(ctx context.Context, p *jobparse.JobPosting) error {
	for _, s := range m.stores {
		if err := s.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Commit commits the stores in order. If one fails, the stores not yet
// committed are aborted.
func (m *MultiStore) Commit() error {
	for i, s := range m.stores {
		if err := s.Commit(); err != nil {
			abortAll(m.stores[i+1:])
			return err
		}
	}
	return nil
}

// Abort aborts every store and reports all failures.
func (m *MultiStore) Abort() error {
	var errs []error
	for _, s := range m.stores {
		if err := s.Abort(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func abortAll(stores []jobparse.PostingStore) {
	for _, s := range stores {
		_ = s.Abort()
	}
}

// Ensure MultiWriter implements jobparse.RequirementWriter at compile time.
var _ jobparse.RequirementWriter = MultiWriter(nil)

// MultiWriter writes requirement records to each writer in order, stopping
// at the first failure.
type MultiWriter []jobparse.RequirementWriter

// WriteRequirements writes records to every writer.
func (m MultiWriter) WriteRequirements(ctx context.Context, records []*jobparse.RequirementRecord) error {
	for _, w := range m {
		if err := w.WriteRequirements(ctx, records); err != nil {
			return err
		}
	}
	return nil
}
