package batch

import (
	"context"

	"github.com/tonyzdev/jobparse"
)

// Classify derives a requirement record for each posting, in input order.
// A posting whose classification faults is reported through progress and
// left out of the result; only cancellation fails the whole call.
func Classify(ctx context.Context, c jobparse.Classifier, postings []*jobparse.JobPosting, progress ProgressFunc) ([]*jobparse.RequirementRecord, error) {
	total := len(postings)
	progress.emit(ProgressEvent{
		Type:  ProgressStarted,
		Total: total,
	})

	records := make([]*jobparse.RequirementRecord, 0, total)
	for i, p := range postings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := ""
		if p != nil {
			name = p.Filename
		}

		var record *jobparse.RequirementRecord
		err := guard(name, func() error {
			req := c.Classify(p)
			if req == nil {
				req = &jobparse.Requirement{}
			}
			record = jobparse.NewRequirementRecord(p, req)
			return nil
		})

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: i + 1,
			Total:     total,
			Name:      name,
		}
		if err != nil {
			event.Type = ProgressFailed
			event.Error = err
		} else {
			records = append(records, record)
		}
		progress.emit(event)
	}

	progress.emit(ProgressEvent{
		Type:      ProgressFinished,
		Completed: total,
		Total:     total,
	})

	return records, nil
}
