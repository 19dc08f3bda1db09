package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyzdev/jobparse"
	main "github.com/tonyzdev/jobparse/cmd/jobparse"
	"github.com/tonyzdev/jobparse/mock"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints fields and description hash", func(t *testing.T) {
		t.Parallel()

		// Given a mirrored external-apply posting
		finder := &mock.PostingFinder{
			FindPostingByFilenameFn: func(_ context.Context, filename string) (*jobparse.JobPosting, error) {
				return &jobparse.JobPosting{
					Filename:        filename,
					JobTitle:        jobparse.String("Data Analyst"),
					Company:         jobparse.String("First National Bank"),
					FullDescription: jobparse.String("SQL and Excel."),
					ApplyMethod:     jobparse.ApplyExternal,
					ApplyURL:        jobparse.String("https://careers.example.com/1"),
				}, nil
			},
			DescriptionHashFn: func(_ context.Context, _ string) (string, error) {
				return "9f86d081", nil
			},
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &stderr, Postings: finder}

		// When I show it
		err := (&main.ShowCmd{Filename: "job_001.html"}).Run(deps)

		// Then its fields, hash and description are printed
		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Data Analyst\n")
		assert.Contains(t, output, "company:      First National Bank")
		assert.Contains(t, output, "location:     unknown")
		assert.Contains(t, output, "apply method: external_apply")
		assert.Contains(t, output, "apply url:    https://careers.example.com/1")
		assert.Contains(t, output, "description:  9f86d081")
		assert.Contains(t, output, "\nSQL and Excel.\n")
	})

	t.Run("omits apply url when unset", func(t *testing.T) {
		t.Parallel()

		finder := &mock.PostingFinder{
			FindPostingByFilenameFn: func(_ context.Context, filename string) (*jobparse.JobPosting, error) {
				return &jobparse.JobPosting{Filename: filename}, nil
			},
			DescriptionHashFn: func(_ context.Context, _ string) (string, error) {
				return "e3b0c442", nil
			},
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &stderr, Postings: finder}

		err := (&main.ShowCmd{Filename: "job_002.html"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "apply method: unknown")
		assert.NotContains(t, stdout.String(), "apply url")
	})

	t.Run("hints at list when posting is missing", func(t *testing.T) {
		t.Parallel()

		finder := &mock.PostingFinder{
			FindPostingByFilenameFn: func(_ context.Context, filename string) (*jobparse.JobPosting, error) {
				return nil, jobparse.Errorf(jobparse.ENOTFOUND, "posting %q not found", filename)
			},
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &stderr, Postings: finder}

		err := (&main.ShowCmd{Filename: "job_404.html"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, jobparse.ENOTFOUND, jobparse.ErrorCode(err))
		assert.Contains(t, stderr.String(), "jobparse list")
	})
}
