package mock

import "github.com/tonyzdev/jobparse"

var _ jobparse.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of jobparse.Classifier.
type Classifier struct {
	ClassifyFn func(p *jobparse.JobPosting) *jobparse.Requirement
}

func (c *Classifier) Classify(p *jobparse.JobPosting) *jobparse.Requirement {
	return c.ClassifyFn(p)
}
