package main

import (
	"fmt"
	"io"

	"github.com/tonyzdev/jobparse"
	"github.com/tonyzdev/jobparse/batch"
	"github.com/tonyzdev/jobparse/fs"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	postings, err := fs.ReadPostings(c.Postings)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return err
	}
	return runParse(deps, postings, c.Prefix)
}

// runParse classifies postings, prints a summary per posting and writes
// the records.
func runParse(deps *Dependencies, postings []*jobparse.JobPosting, prefix string) error {
	progress := func(e batch.ProgressEvent) {
		if e.Type == batch.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", e.Name, jobparse.ErrorMessage(e.Error))
		}
	}

	records, err := batch.Classify(deps.Ctx, deps.Classifier, postings, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return err
	}

	for _, r := range records {
		printRecord(deps.Stdout, r)
	}

	if err := deps.Requirements.WriteRequirements(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing requirements: %s\n", jobparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nParsed %d jobs\n", len(records))
	fmt.Fprintf(deps.Stdout, "CSV output: %s.csv\n", prefix)
	fmt.Fprintf(deps.Stdout, "JSON output: %s.json\n", prefix)

	return nil
}

func printRecord(w io.Writer, r *jobparse.RequirementRecord) {
	fmt.Fprintf(w, "\n%s @ %s\n", orNotSpecified(r.JobTitle), orNotSpecified(r.Company))
	fmt.Fprintf(w, "  education:  %s\n", orNotSpecified(r.Education))
	fmt.Fprintf(w, "  major:      %s\n", orNotSpecified(r.Major))
	fmt.Fprintf(w, "  experience: %s\n", orNotSpecified(r.Experience))
	fmt.Fprintf(w, "  industry:   %s\n", orNotSpecified(r.Industry))
}

func orNotSpecified(s string) string {
	if s == "" {
		return "not specified"
	}
	return s
}
