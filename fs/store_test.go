package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyzdev/jobparse"
	"github.com/tonyzdev/jobparse/fs"
)

func posting(filename, title string) *jobparse.JobPosting {
	return &jobparse.JobPosting{
		Filename: filename,
		JobTitle: jobparse.String(title),
		Company:  jobparse.String("Acme"),
	}
}

// Story: Atomic Posting Storage
// The store uses a temp directory for atomic updates

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given an opened store
	base := t.TempDir()
	store := fs.NewFileStore(base, "jobs")
	require.NoError(t, store.Open(context.Background()))
	defer store.Abort()

	// When I save a posting
	err := store.Save(context.Background(), posting("job_001.html", "Analyst"))

	// Then the file exists in the temp directory
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "jobs.tmp", "job_001.json"))
	require.NoError(t, err, "file should exist in temp directory")

	// And the final outputs do not exist yet
	_, err = os.Stat(filepath.Join(base, "jobs"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
	_, err = os.Stat(filepath.Join(base, "jobs.json"))
	assert.True(t, os.IsNotExist(err), "aggregate should not exist until commit")
}

func TestFileStore_CommitWritesItemsAndAggregate(t *testing.T) {
	t.Parallel()

	// Given a store with saved postings
	base := t.TempDir()
	store := fs.NewFileStore(base, "jobs")
	require.NoError(t, store.Open(context.Background()))
	require.NoError(t, store.Save(context.Background(), posting("job_b.html", "B")))
	require.NoError(t, store.Save(context.Background(), posting("job_a.html", "A")))

	// When I commit
	err := store.Commit()

	// Then per-item files are in the final directory
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(base, "jobs", "job_a.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"job_title": "A"`)
	assert.Contains(t, string(data), `"salary": null`)
	assert.Contains(t, string(data), `"apply_method": null`)

	// And the aggregate keeps save order
	data, err = os.ReadFile(filepath.Join(base, "jobs.json"))
	require.NoError(t, err)
	var postings []jobparse.JobPosting
	require.NoError(t, json.Unmarshal(data, &postings))
	require.Len(t, postings, 2)
	assert.Equal(t, "job_b.html", postings[0].Filename)
	assert.Equal(t, "job_a.html", postings[1].Filename)

	// And the temp directory is gone
	_, err = os.Stat(filepath.Join(base, "jobs.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitReplacesPreviousRun(t *testing.T) {
	t.Parallel()

	// Given a previous run left an item that no longer exists
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "jobs", "stale.json"), "{}")

	store := fs.NewFileStore(base, "jobs")
	require.NoError(t, store.Open(context.Background()))
	require.NoError(t, store.Save(context.Background(), posting("fresh.html", "Fresh")))

	// When I commit
	require.NoError(t, store.Commit())

	// Then only the new output remains
	_, err := os.Stat(filepath.Join(base, "jobs", "stale.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "jobs", "fresh.json"))
	assert.NoError(t, err)
}

func TestFileStore_CommitWithNoPostingsWritesEmptyList(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "jobs")
	require.NoError(t, store.Open(context.Background()))

	require.NoError(t, store.Commit())

	data, err := os.ReadFile(filepath.Join(base, "jobs.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileStore_RerunProducesIdenticalOutput(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	run := func() []byte {
		store := fs.NewFileStore(base, "jobs")
		require.NoError(t, store.Open(context.Background()))
		require.NoError(t, store.Save(context.Background(), posting("job.html", "Analyst")))
		require.NoError(t, store.Commit())
		data, err := os.ReadFile(filepath.Join(base, "jobs", "job.json"))
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, run(), run())
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with saved postings
	base := t.TempDir()
	store := fs.NewFileStore(base, "jobs")
	require.NoError(t, store.Open(context.Background()))
	require.NoError(t, store.Save(context.Background(), posting("job.html", "A")))

	// When I abort
	err := store.Abort()

	// Then nothing is left behind
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "jobs.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")
	_, err = os.Stat(filepath.Join(base, "jobs"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_OpenFailsWhileLocked(t *testing.T) {
	t.Parallel()

	// Given a store holding the output lock
	base := t.TempDir()
	first := fs.NewFileStore(base, "jobs")
	require.NoError(t, first.Open(context.Background()))

	// When a second store opens the same output
	second := fs.NewFileStore(base, "jobs")
	err := second.Open(context.Background())

	// Then it is refused
	require.Error(t, err)
	assert.Equal(t, jobparse.ECORPUS, jobparse.ErrorCode(err))

	// And it succeeds once the first run finishes
	require.NoError(t, first.Abort())
	require.NoError(t, second.Open(context.Background()))
	require.NoError(t, second.Abort())
}

func TestFileStore_OpenFailsForUnwritableBase(t *testing.T) {
	t.Parallel()

	// Given a base path that is a regular file
	base := filepath.Join(t.TempDir(), "file")
	writeFile(t, base, "x")

	err := fs.NewFileStore(base, "jobs").Open(context.Background())

	require.Error(t, err)
	assert.Equal(t, jobparse.ECORPUS, jobparse.ErrorCode(err))
}

func TestFileStore_SaveRejectsInvalidPosting(t *testing.T) {
	t.Parallel()

	store := fs.NewFileStore(t.TempDir(), "jobs")
	require.NoError(t, store.Open(context.Background()))
	defer store.Abort()

	err := store.Save(context.Background(), &jobparse.JobPosting{})

	assert.Equal(t, jobparse.EINVALID, jobparse.ErrorCode(err))
}

func TestFileStore_WritesMarkdownWhenConfigured(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "jobs", fs.WithMarkdown(fs.NewMarkdownWriter(nil)))
	require.NoError(t, store.Open(context.Background()))

	p := posting("job.html", "Analyst")
	p.FullDescription = jobparse.String("Plain description")
	require.NoError(t, store.Save(context.Background(), p))
	require.NoError(t, store.Commit())

	data, err := os.ReadFile(filepath.Join(base, "jobs", "job.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Analyst")
	assert.Contains(t, string(data), "Plain description")
}
