package mock

import "github.com/tonyzdev/jobparse"

var _ jobparse.PostingExtractor = (*PostingExtractor)(nil)

// PostingExtractor is a mock implementation of jobparse.PostingExtractor.
type PostingExtractor struct {
	ExtractFn func(raw string, filename string) *jobparse.JobPosting
}

func (e *PostingExtractor) Extract(raw string, filename string) *jobparse.JobPosting {
	return e.ExtractFn(raw, filename)
}
