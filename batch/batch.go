// Package batch runs extraction and classification over a corpus of
// captured pages. Items are processed concurrently with per-item failure
// isolation; output is always written in input order.
package batch

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/tonyzdev/jobparse"
)

// ProgressEvent reports progress during a batch operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

func (fn ProgressFunc) emit(event ProgressEvent) {
	if fn != nil {
		fn(event)
	}
}

// ComputeHash computes a hash of capture content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// itemError reports a per-item fault as a malformed document, keeping the
// original message.
func itemError(name string, err error) error {
	if jobparse.ErrorCode(err) == jobparse.EMALFORMED {
		return err
	}
	msg := err.Error()
	var e *jobparse.Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	return jobparse.Errorf(jobparse.EMALFORMED, "%s: %s", name, msg)
}

// guard runs fn, converting a panic into a malformed-document error.
func guard(name string, fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = jobparse.Errorf(jobparse.EMALFORMED, "%s: panic: %v", name, v)
		}
	}()
	if err := fn(); err != nil {
		return itemError(name, err)
	}
	return nil
}
