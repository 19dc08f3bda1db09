package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tonyzdev/jobparse"
	"github.com/tonyzdev/jobparse/schema"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return fmt.Errorf("read %s: %w", c.File, err)
	}

	kind, err := schema.Check(data)
	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintln(deps.Stderr, ve.Error())
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobparse.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: valid %s document\n", c.File, kind)
	return nil
}
