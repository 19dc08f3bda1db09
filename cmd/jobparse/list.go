package main

import (
	"fmt"

	"github.com/tonyzdev/jobparse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	postings, err := deps.Postings.FindPostings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return err
	}

	if len(postings) == 0 {
		fmt.Fprintln(deps.Stdout, "No postings found. Use 'jobparse extract --db' to mirror a run.")
		return nil
	}

	for _, p := range postings {
		fmt.Fprintf(deps.Stdout, "%s  %s @ %s\n", p.Filename, orUnknown(p.JobTitle), orUnknown(p.Company))
	}

	return nil
}
