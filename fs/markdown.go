package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tonyzdev/jobparse"
)

// MarkdownWriter exports posting descriptions as markdown files with
// YAML frontmatter.
type MarkdownWriter struct {
	conv jobparse.Converter
}

// NewMarkdownWriter creates a MarkdownWriter. conv renders the description
// markup; when nil, or when conversion fails, the plain description is used.
func NewMarkdownWriter(conv jobparse.Converter) *MarkdownWriter {
	return &MarkdownWriter{conv: conv}
}

// WriteFile writes dir/<stem>.md for the posting.
func (w *MarkdownWriter) WriteFile(dir string, p *jobparse.JobPosting) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(dir, p.Stem()+".md")
	return os.WriteFile(path, []byte(w.Format(p)), 0644)
}

// Format renders the posting as frontmatter followed by its description.
func (w *MarkdownWriter) Format(p *jobparse.JobPosting) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(p.Filename)
	b.WriteString("\ntitle: ")
	b.WriteString(jobparse.Value(p.JobTitle))
	b.WriteString("\ncompany: ")
	b.WriteString(jobparse.Value(p.Company))
	b.WriteString("\napply_method: ")
	b.WriteString(string(p.ApplyMethod))
	b.WriteString("\nscraped: ")
	b.WriteString(jobparse.Value(p.ScrapedAt))
	b.WriteString("\n---\n\n")
	b.WriteString(w.body(p))
	b.WriteString("\n")
	return b.String()
}

func (w *MarkdownWriter) body(p *jobparse.JobPosting) string {
	if w.conv != nil && strings.TrimSpace(p.DescriptionHTML) != "" {
		if md, err := w.conv.Convert(p.DescriptionHTML); err == nil {
			return md
		}
	}
	return jobparse.Value(p.FullDescription)
}
