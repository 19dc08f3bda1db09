package fs

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/tonyzdev/jobparse"
)

// Ensure RequirementWriter implements jobparse.RequirementWriter at compile time.
var _ jobparse.RequirementWriter = (*RequirementWriter)(nil)

// RequirementWriter writes classified records as <prefix>.csv and
// <prefix>.json.
type RequirementWriter struct {
	prefix string
}

// NewRequirementWriter creates a RequirementWriter for the given path prefix.
func NewRequirementWriter(prefix string) *RequirementWriter {
	return &RequirementWriter{prefix: prefix}
}

// CSVPath returns the path of the tabular output.
func (w *RequirementWriter) CSVPath() string {
	return w.prefix + ".csv"
}

// JSONPath returns the path of the JSON output.
func (w *RequirementWriter) JSONPath() string {
	return w.prefix + ".json"
}

// WriteRequirements writes both outputs, replacing previous ones.
func (w *RequirementWriter) WriteRequirements(ctx context.Context, records []*jobparse.RequirementRecord) error {
	if w.prefix == "" {
		return jobparse.Errorf(jobparse.EINVALID, "output prefix required")
	}
	if records == nil {
		records = []*jobparse.RequirementRecord{}
	}

	if err := os.MkdirAll(filepath.Dir(w.prefix), 0755); err != nil {
		return jobparse.Errorf(jobparse.ECORPUS, "create output directory: %v", err)
	}

	if err := w.writeCSV(records); err != nil {
		return err
	}
	return writeJSON(w.JSONPath(), records)
}

func (w *RequirementWriter) writeCSV(records []*jobparse.RequirementRecord) error {
	f, err := os.Create(w.CSVPath())
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(jobparse.RequirementColumns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return f.Close()
}
