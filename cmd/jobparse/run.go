package main

// Run executes the run command: extraction followed by classification of
// the postings it saved.
func (c *RunCmd) Run(deps *Dependencies) error {
	res, err := runExtract(deps, c.Concurrency, c.Path, c.Name)
	if err != nil {
		return err
	}
	return runParse(deps, res.Postings, c.Prefix())
}
