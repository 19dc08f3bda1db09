package batch

import (
	"context"
	"sync/atomic"

	"github.com/tonyzdev/jobparse"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of captures processed at once when the
// runner does not set one.
const DefaultConcurrency = 4

// Runner extracts postings from every capture in a corpus and saves them.
type Runner struct {
	Corpus      jobparse.Corpus
	Extractor   jobparse.PostingExtractor
	Store       jobparse.PostingStore
	Concurrency int

	// Seen, when set, counts captures whose content was already seen.
	Seen jobparse.ContentSet
}

// Result holds the outcome of a run.
type Result struct {
	Total      int
	Saved      int
	Failed     int
	Duplicates int

	// Postings holds the saved postings in input order.
	Postings []*jobparse.JobPosting
}

// itemResult holds the outcome of processing a single capture.
type itemResult struct {
	position int
	name     string
	posting  *jobparse.JobPosting
	hash     string
	err      error
}

// Run processes the corpus. Listing the corpus and opening the store must
// succeed before any item is processed; after that, a failing item is
// reported through progress and left out of the output.
func (r *Runner) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	names, err := r.Corpus.List(ctx)
	if err != nil {
		return nil, corpusError("list corpus", err)
	}

	if err := r.Store.Open(ctx); err != nil {
		return nil, corpusError("open output", err)
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan itemResult, len(names))

	var completed atomic.Int64
	total := len(names)

	progress.emit(ProgressEvent{
		Type:  ProgressStarted,
		Total: total,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, name := range names {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				resultCh <- r.processItem(gctx, i, name)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]itemResult, len(names))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Name:      result.name,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress.emit(event)
	}

	if err := ctx.Err(); err != nil {
		_ = r.Store.Abort()
		return nil, err
	}

	res := &Result{Total: total}
	for _, result := range results {
		if result.err != nil {
			res.Failed++
			continue
		}

		if r.Seen != nil {
			if r.Seen.Test(result.hash) {
				res.Duplicates++
			}
			r.Seen.Add(result.hash)
		}

		if err := r.Store.Save(ctx, result.posting); err != nil {
			_ = r.Store.Abort()
			return nil, err
		}
		res.Saved++
		res.Postings = append(res.Postings, result.posting)
	}

	if err := r.Store.Commit(); err != nil {
		return nil, err
	}

	progress.emit(ProgressEvent{
		Type:      ProgressFinished,
		Completed: total,
		Total:     total,
	})

	return res, nil
}

// processItem reads and extracts a single capture.
func (r *Runner) processItem(ctx context.Context, position int, name string) itemResult {
	result := itemResult{
		position: position,
		name:     name,
	}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	result.err = guard(name, func() error {
		raw, err := r.Corpus.Read(ctx, name)
		if err != nil {
			return err
		}

		p := r.Extractor.Extract(raw, name)
		if p == nil {
			return jobparse.Errorf(jobparse.EMALFORMED, "%s: nothing extracted", name)
		}
		if err := p.Validate(); err != nil {
			return err
		}

		result.posting = p
		result.hash = ComputeHash(raw)
		return nil
	})
	if result.err != nil {
		result.posting = nil
	}

	return result
}

func corpusError(op string, err error) error {
	if jobparse.ErrorCode(err) == jobparse.ECORPUS {
		return err
	}
	return jobparse.Errorf(jobparse.ECORPUS, "%s: %v", op, err)
}
