// Package fs provides file-based reading of captured pages and storage of
// extracted postings and classified requirements.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/tonyzdev/jobparse"
)

// CaptureExt is the extension of captured documents in a corpus.
const CaptureExt = ".html"

// Ensure Corpus implements jobparse.Corpus at compile time.
var _ jobparse.Corpus = (*Corpus)(nil)

// Corpus reads captured documents from a directory.
type Corpus struct {
	root string
}

// NewCorpus creates a Corpus over the captures in root.
func NewCorpus(root string) *Corpus {
	return &Corpus{root: root}
}

// Root returns the corpus directory.
func (c *Corpus) Root() string {
	return c.root
}

// List returns the names of the *.html files in the corpus root, sorted.
// Subdirectories are not searched.
func (c *Corpus) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, jobparse.Errorf(jobparse.ECORPUS, "read corpus %s: %v", c.root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != CaptureExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Read returns the contents of the named capture. Files that are not valid
// UTF-8 are rejected as malformed.
func (c *Corpus) Read(ctx context.Context, name string) (string, error) {
	if name != filepath.Base(name) {
		return "", jobparse.Errorf(jobparse.EINVALID, "capture name %q must not contain a path", name)
	}

	data, err := os.ReadFile(filepath.Join(c.root, name))
	if err != nil {
		return "", jobparse.Errorf(jobparse.EMALFORMED, "read %s: %v", name, err)
	}
	if !utf8.Valid(data) {
		return "", jobparse.Errorf(jobparse.EMALFORMED, "%s is not valid UTF-8", name)
	}

	return string(data), nil
}
