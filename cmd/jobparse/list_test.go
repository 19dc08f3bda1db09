package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyzdev/jobparse"
	main "github.com/tonyzdev/jobparse/cmd/jobparse"
	"github.com/tonyzdev/jobparse/mock"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one line per posting", func(t *testing.T) {
		t.Parallel()

		// Given a mirror holding two postings
		finder := &mock.PostingFinder{
			FindPostingsFn: func(_ context.Context) ([]*jobparse.JobPosting, error) {
				return []*jobparse.JobPosting{
					{Filename: "job_001.html", JobTitle: jobparse.String("Data Analyst"), Company: jobparse.String("First National Bank")},
					{Filename: "job_002.html"},
				}, nil
			},
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &stderr, Postings: finder}

		// When I list postings
		err := (&main.ListCmd{}).Run(deps)

		// Then each posting is printed in save order
		require.NoError(t, err)
		assert.Equal(t,
			"job_001.html  Data Analyst @ First National Bank\njob_002.html  unknown @ unknown\n",
			stdout.String())
	})

	t.Run("hints when the mirror is empty", func(t *testing.T) {
		t.Parallel()

		finder := &mock.PostingFinder{
			FindPostingsFn: func(_ context.Context) ([]*jobparse.JobPosting, error) {
				return nil, nil
			},
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &stderr, Postings: finder}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No postings found")
	})

	t.Run("reports lookup failures", func(t *testing.T) {
		t.Parallel()

		finder := &mock.PostingFinder{
			FindPostingsFn: func(_ context.Context) ([]*jobparse.JobPosting, error) {
				return nil, errors.New("disk I/O error")
			},
		}
		var stdout, stderr bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &stderr, Postings: finder}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}
