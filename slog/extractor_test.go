package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyzdev/jobparse"
	"github.com/tonyzdev/jobparse/mock"
	jpslog "github.com/tonyzdev/jobparse/slog"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs found fields and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PostingExtractor{
			ExtractFn: func(raw string, filename string) *jobparse.JobPosting {
				return &jobparse.JobPosting{
					Filename:    filename,
					JobTitle:    jobparse.String("Analyst"),
					ApplyMethod: jobparse.ApplyIndeed,
				}
			},
		}

		extractor := jpslog.NewLoggingExtractor(inner, debugLogger(&buf))
		p := extractor.Extract("<html></html>", "job.html")

		require.NotNil(t, p)
		assert.Equal(t, "Analyst", jobparse.Value(p.JobTitle))
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "file=job.html")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "title=true")
		assert.Contains(t, output, "company=false")
		assert.Contains(t, output, "apply_method=indeed_apply")
		assert.Contains(t, output, "duration=")
	})

	t.Run("quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PostingExtractor{
			ExtractFn: func(raw string, filename string) *jobparse.JobPosting {
				return &jobparse.JobPosting{Filename: filename}
			},
		}

		jpslog.NewLoggingExtractor(inner, logger).Extract("x", "job.html")

		assert.Empty(t, buf.String())
	})
}
