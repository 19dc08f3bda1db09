package mock

import (
	"context"

	"github.com/tonyzdev/jobparse"
)

// Compile-time interface verification.
var (
	_ jobparse.Corpus            = (*Corpus)(nil)
	_ jobparse.PostingStore      = (*PostingStore)(nil)
	_ jobparse.PostingFinder     = (*PostingFinder)(nil)
	_ jobparse.RequirementWriter = (*RequirementWriter)(nil)
	_ jobparse.ContentSet        = (*ContentSet)(nil)
)

// Corpus is a mock implementation of jobparse.Corpus.
type Corpus struct {
	ListFn func(ctx context.Context) ([]string, error)
	ReadFn func(ctx context.Context, name string) (string, error)
}

func (c *Corpus) List(ctx context.Context) ([]string, error) {
	return c.ListFn(ctx)
}

func (c *Corpus) Read(ctx context.Context, name string) (string, error) {
	return c.ReadFn(ctx, name)
}

// PostingStore is a mock implementation of jobparse.PostingStore.
type PostingStore struct {
	OpenFn   func(ctx context.Context) error
	SaveFn   func(ctx context.Context, p *jobparse.JobPosting) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PostingStore) Open(ctx context.Context) error {
	return s.OpenFn(ctx)
}

func (s *PostingStore) Save(ctx context.Context, p *jobparse.JobPosting) error {
	return s.SaveFn(ctx, p)
}

func (s *PostingStore) Commit() error {
	return s.CommitFn()
}

func (s *PostingStore) Abort() error {
	return s.AbortFn()
}

// RequirementWriter is a mock implementation of jobparse.RequirementWriter.
type RequirementWriter struct {
	WriteRequirementsFn func(ctx context.Context, records []*jobparse.RequirementRecord) error
}

func (w *RequirementWriter) WriteRequirements(ctx context.Context, records []*jobparse.RequirementRecord) error {
	return w.WriteRequirementsFn(ctx, records)
}

// ContentSet is a mock implementation of jobparse.ContentSet.
type ContentSet struct {
	AddFn  func(key string)
	TestFn func(key string) bool
}

func (s *ContentSet) Add(key string) {
	s.AddFn(key)
}

func (s *ContentSet) Test(key string) bool {
	return s.TestFn(key)
}

// PostingFinder is a mock implementation of jobparse.PostingFinder.
type PostingFinder struct {
	FindPostingByFilenameFn func(ctx context.Context, filename string) (*jobparse.JobPosting, error)
	FindPostingsFn          func(ctx context.Context) ([]*jobparse.JobPosting, error)
	DescriptionHashFn       func(ctx context.Context, filename string) (string, error)
}

func (f *PostingFinder) FindPostingByFilename(ctx context.Context, filename string) (*jobparse.JobPosting, error) {
	return f.FindPostingByFilenameFn(ctx, filename)
}

func (f *PostingFinder) FindPostings(ctx context.Context) ([]*jobparse.JobPosting, error) {
	return f.FindPostingsFn(ctx)
}

func (f *PostingFinder) DescriptionHash(ctx context.Context, filename string) (string, error) {
	return f.DescriptionHashFn(ctx, filename)
}
