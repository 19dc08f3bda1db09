package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tonyzdev/jobparse"
)

// Ensure LoggingCorpus implements jobparse.Corpus.
var _ jobparse.Corpus = (*LoggingCorpus)(nil)

// LoggingCorpus wraps a Corpus with logging.
type LoggingCorpus struct {
	next   jobparse.Corpus
	logger *slog.Logger
}

// NewLoggingCorpus creates a new LoggingCorpus.
func NewLoggingCorpus(next jobparse.Corpus, logger *slog.Logger) *LoggingCorpus {
	return &LoggingCorpus{next: next, logger: logger}
}

// List delegates to the wrapped corpus and logs the capture count.
func (c *LoggingCorpus) List(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("list corpus",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.List(ctx)
}

// Read delegates to the wrapped corpus and logs the capture size.
func (c *LoggingCorpus) Read(ctx context.Context, name string) (raw string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("read capture",
			"file", name,
			"bytes", len(raw),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Read(ctx, name)
}
