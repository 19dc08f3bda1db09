// Package slog provides logging decorators for jobparse services.
package slog

import (
	"log/slog"
	"time"

	"github.com/tonyzdev/jobparse"
)

// Ensure LoggingExtractor implements jobparse.PostingExtractor.
var _ jobparse.PostingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PostingExtractor with debug logging.
type LoggingExtractor struct {
	next   jobparse.PostingExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobparse.PostingExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs which fields were found.
func (e *LoggingExtractor) Extract(raw string, filename string) (p *jobparse.JobPosting) {
	defer func(begin time.Time) {
		if p == nil {
			return
		}
		e.logger.Debug("extract",
			"file", filename,
			"bytes", len(raw),
			"title", p.JobTitle != nil,
			"company", p.Company != nil,
			"description", p.FullDescription != nil,
			"apply_method", string(p.ApplyMethod),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(raw, filename)
}
