package fs

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/tonyzdev/jobparse"
)

// ReadPostings loads an aggregate postings list written by FileStore.
func ReadPostings(path string) ([]*jobparse.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, jobparse.Errorf(jobparse.ECORPUS, "read postings: %v", err)
	}
	return DecodePostings(data)
}

// DecodePostings parses a JSON list of postings. Anything other than a
// list of objects is rejected.
func DecodePostings(data []byte) ([]*jobparse.JobPosting, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, jobparse.Errorf(jobparse.EINVALID, "postings file must contain a JSON list")
	}

	var postings []*jobparse.JobPosting
	if err := json.Unmarshal(trimmed, &postings); err != nil {
		return nil, jobparse.Errorf(jobparse.EINVALID, "decode postings: %v", err)
	}

	for i, p := range postings {
		if p == nil {
			return nil, jobparse.Errorf(jobparse.EINVALID, "posting %d is null", i)
		}
	}

	return postings, nil
}
