package main

import (
	"fmt"

	"github.com/tonyzdev/jobparse"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	p, err := deps.Postings.FindPostingByFilename(deps.Ctx, c.Filename)
	if err != nil {
		if jobparse.ErrorCode(err) == jobparse.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: posting %q not found. Use 'jobparse list' to see mirrored postings.\n", c.Filename)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		}
		return err
	}

	hash, err := deps.Postings.DescriptionHash(deps.Ctx, c.Filename)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", orUnknown(p.JobTitle))
	fmt.Fprintf(deps.Stdout, "  company:      %s\n", orUnknown(p.Company))
	fmt.Fprintf(deps.Stdout, "  location:     %s\n", orUnknown(p.Location))
	fmt.Fprintf(deps.Stdout, "  salary:       %s\n", orUnknown(p.Salary))
	fmt.Fprintf(deps.Stdout, "  job type:     %s\n", orUnknown(p.JobType))
	fmt.Fprintf(deps.Stdout, "  apply method: %s\n", orUnknownMethod(p.ApplyMethod))
	if p.ApplyURL != nil {
		fmt.Fprintf(deps.Stdout, "  apply url:    %s\n", *p.ApplyURL)
	}
	fmt.Fprintf(deps.Stdout, "  scraped:      %s\n", orUnknown(p.ScrapedAt))
	fmt.Fprintf(deps.Stdout, "  description:  %s\n", hash)
	if desc := jobparse.Value(p.FullDescription); desc != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", desc)
	}

	return nil
}

func orUnknownMethod(m jobparse.ApplyMethod) string {
	if m == jobparse.ApplyUnset {
		return "unknown"
	}
	return string(m)
}
