package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tonyzdev/jobparse"
)

// Ensure LoggingStore implements jobparse.PostingStore.
var _ jobparse.PostingStore = (*LoggingStore)(nil)

// LoggingStore wraps a PostingStore with logging. name identifies the
// wrapped store in log output.
type LoggingStore struct {
	next   jobparse.PostingStore
	name   string
	logger *slog.Logger
	saved  int
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next jobparse.PostingStore, name string, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, name: name, logger: logger}
}

// Open delegates to the wrapped store.
func (s *LoggingStore) Open(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("open store",
			"store", s.name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	s.saved = 0
	return s.next.Open(ctx)
}

// Save delegates to the wrapped store.
func (s *LoggingStore) Save(ctx context.Context, p *jobparse.JobPosting) (err error) {
	defer func(begin time.Time) {
		if err == nil {
			s.saved++
		}
		s.logger.Debug("save posting",
			"store", s.name,
			"file", p.Filename,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, p)
}

// Commit delegates to the wrapped store and logs how many postings it held.
func (s *LoggingStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit store",
			"store", s.name,
			"count", s.saved,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store.
func (s *LoggingStore) Abort() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("abort store",
			"store", s.name,
			"count", s.saved,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Abort()
}
