package jobparse

import "context"

// Corpus enumerates and reads captured documents.
type Corpus interface {
	// List returns document names sorted lexicographically.
	List(ctx context.Context) ([]string, error)
	// Read returns the raw text of the named document.
	Read(ctx context.Context, name string) (string, error)
}

// PostingStore persists extracted postings with atomic semantics.
// Open prepares the destination; Save writes to a pending location;
// Commit makes the whole run permanent; Abort discards it.
type PostingStore interface {
	Open(ctx context.Context) error
	Save(ctx context.Context, p *JobPosting) error
	Commit() error
	Abort() error
}

// PostingFinder looks up postings from a committed run.
type PostingFinder interface {
	// FindPostingByFilename returns ENOTFOUND when no posting has filename.
	FindPostingByFilename(ctx context.Context, filename string) (*JobPosting, error)
	// FindPostings returns postings in save order.
	FindPostings(ctx context.Context) ([]*JobPosting, error)
	// DescriptionHash returns the content hash stored for a posting's
	// description.
	DescriptionHash(ctx context.Context, filename string) (string, error)
}

// ContentSet remembers content keys seen during a run. Test may report
// false positives but never false negatives.
type ContentSet interface {
	Add(key string)
	Test(key string) bool
}
