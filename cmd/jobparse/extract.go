package main

import (
	"fmt"
	"io"

	"github.com/tonyzdev/jobparse"
	"github.com/tonyzdev/jobparse/batch"
)

// summaryLimit is the number of postings listed after an extraction.
const summaryLimit = 5

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	_, err := runExtract(deps, c.Concurrency, c.Path, c.Name)
	return err
}

// runExtract runs the batch extractor and reports what it saved.
func runExtract(deps *Dependencies, concurrency int, path, name string) (*batch.Result, error) {
	runner := &batch.Runner{
		Corpus:      deps.Corpus,
		Extractor:   deps.Extractor,
		Store:       deps.Store,
		Concurrency: concurrency,
		Seen:        deps.Seen,
	}

	progress := func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d documents\n", e.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", e.Name, jobparse.ErrorMessage(e.Error))
		}
	}

	res, err := runner.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return nil, err
	}

	dir, aggregate := outputPaths(path, name)
	fmt.Fprintf(deps.Stdout, "Extracted %d jobs\n", res.Saved)
	fmt.Fprintf(deps.Stdout, "  - Individual JSON files saved to: %s\n", dir)
	fmt.Fprintf(deps.Stdout, "  - Combined JSON saved to: %s\n", aggregate)
	if res.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, "  - Duplicate captures: %d\n", res.Duplicates)
	}

	printPostings(deps.Stdout, res.Postings)

	return res, nil
}

func printPostings(w io.Writer, postings []*jobparse.JobPosting) {
	if len(postings) == 0 {
		return
	}

	fmt.Fprintln(w, "\n=== Summary ===")
	for i, p := range postings {
		if i == summaryLimit {
			fmt.Fprintf(w, "  ... and %d more\n", len(postings)-summaryLimit)
			break
		}
		fmt.Fprintf(w, "- %s @ %s (%s)\n",
			orUnknown(p.JobTitle), orUnknown(p.Company), orUnknown(p.Location))
	}
}

func orUnknown(s *string) string {
	if v := jobparse.Value(s); v != "" {
		return v
	}
	return "unknown"
}
