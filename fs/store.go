package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/tonyzdev/jobparse"
)

// Ensure FileStore implements jobparse.PostingStore at compile time.
var _ jobparse.PostingStore = (*FileStore)(nil)

// FileStore implements jobparse.PostingStore with atomic update semantics.
// Postings are saved to a temporary directory, then moved atomically on
// Commit together with the aggregate list. A lock file keeps concurrent
// runs from writing the same output.
type FileStore struct {
	baseDir  string
	name     string
	markdown *MarkdownWriter

	lock     *flock.Flock
	postings []*jobparse.JobPosting
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithMarkdown also writes a <stem>.md description export per posting.
func WithMarkdown(w *MarkdownWriter) FileStoreOption {
	return func(s *FileStore) {
		s.markdown = w
	}
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output name. Postings are
// saved to baseDir/name.tmp and moved to baseDir/name on Commit; the
// aggregate list is written to baseDir/name.json.
func NewFileStore(baseDir, name string, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		baseDir: baseDir,
		name:    name,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *FileStore) lockPath() string {
	return filepath.Join(s.baseDir, "."+s.name+".lock")
}

// AggregatePath returns the path of the aggregate postings list.
func (s *FileStore) AggregatePath() string {
	return filepath.Join(s.baseDir, s.name+".json")
}

// Open takes the output lock and prepares an empty temporary directory.
func (s *FileStore) Open(ctx context.Context) error {
	if s.name == "" {
		return jobparse.Errorf(jobparse.EINVALID, "output name required")
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return jobparse.Errorf(jobparse.ECORPUS, "create output directory: %v", err)
	}

	lock := flock.New(s.lockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return jobparse.Errorf(jobparse.ECORPUS, "lock output %s: %v", s.name, err)
	}
	if !locked {
		return jobparse.Errorf(jobparse.ECORPUS, "output %s is in use by another run", s.name)
	}
	s.lock = lock
	s.postings = nil

	// Leftovers from an interrupted run
	if err := os.RemoveAll(s.tempDir()); err != nil {
		s.unlock()
		return jobparse.Errorf(jobparse.ECORPUS, "clear temporary output: %v", err)
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		s.unlock()
		return jobparse.Errorf(jobparse.ECORPUS, "create temporary output: %v", err)
	}

	return nil
}

// Save writes the posting to <stem>.json in the temporary directory and
// appends it to the aggregate list.
func (s *FileStore) Save(ctx context.Context, p *jobparse.JobPosting) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := writeJSON(filepath.Join(s.tempDir(), p.Stem()+".json"), p); err != nil {
		return fmt.Errorf("save %s: %w", p.Filename, err)
	}

	if s.markdown != nil {
		if err := s.markdown.WriteFile(s.tempDir(), p); err != nil {
			return fmt.Errorf("save %s markdown: %w", p.Filename, err)
		}
	}

	s.postings = append(s.postings, p)
	return nil
}

// Commit writes the aggregate list, then replaces the final directory with
// the temporary one.
func (s *FileStore) Commit() error {
	defer s.unlock()

	postings := s.postings
	if postings == nil {
		postings = []*jobparse.JobPosting{}
	}

	aggregateTmp := s.AggregatePath() + ".tmp"
	if err := writeJSON(aggregateTmp, postings); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return os.Rename(aggregateTmp, s.AggregatePath())
}

// Abort discards the temporary output and releases the lock.
func (s *FileStore) Abort() error {
	defer s.unlock()
	s.postings = nil

	err := os.RemoveAll(s.tempDir())
	if rmErr := os.Remove(s.AggregatePath() + ".tmp"); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
		err = rmErr
	}
	return err
}

func (s *FileStore) unlock() {
	if s.lock == nil {
		return
	}
	_ = s.lock.Unlock()
	s.lock = nil
}
