package jobparse

import (
	"encoding/json"
	"strings"
)

// ApplyMethod describes how a candidate applies to a posting.
type ApplyMethod string

// ApplyMethod values. ApplyUnset serializes as JSON null.
const (
	ApplyUnset    ApplyMethod = ""
	ApplyIndeed   ApplyMethod = "indeed_apply"
	ApplyExternal ApplyMethod = "external_apply"
)

// MarshalJSON encodes an unset method as null.
func (m ApplyMethod) MarshalJSON() ([]byte, error) {
	if m == ApplyUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(m))
}

// UnmarshalJSON decodes null as ApplyUnset.
func (m *ApplyMethod) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = ApplyUnset
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = ApplyMethod(s)
	return nil
}

// JobPosting is the structured record extracted from one captured document.
// Every field except Filename is optional; partial extraction is expected.
type JobPosting struct {
	Filename        string      `json:"filename"`
	JobTitle        *string     `json:"job_title"`
	Company         *string     `json:"company"`
	Location        *string     `json:"location"`
	Salary          *string     `json:"salary"`
	JobType         *string     `json:"job_type"`
	ScrapedAt       *string     `json:"scraped_at"`
	FullDescription *string     `json:"full_description"`
	ApplyMethod     ApplyMethod `json:"apply_method"`
	ApplyURL        *string     `json:"apply_url"`

	// URL is the posting page address. Captures do not carry it, but
	// postings assembled elsewhere may.
	URL *string `json:"url,omitempty"`

	// DescriptionHTML is the description container's markup, kept for
	// markdown export. It is never serialized.
	DescriptionHTML string `json:"-"`
}

// Validate returns an error if the posting contains invalid fields.
func (p *JobPosting) Validate() error {
	if p.Filename == "" {
		return Errorf(EINVALID, "posting filename required")
	}
	if p.ApplyURL != nil && p.ApplyMethod != ApplyExternal {
		return Errorf(EINVALID, "posting %q: apply url set for apply method %q", p.Filename, p.ApplyMethod)
	}
	return nil
}

// Stem returns the filename without its extension. Output files for the
// posting are named after it.
func (p *JobPosting) Stem() string {
	name := p.Filename
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}

// PostingExtractor derives a JobPosting from a raw captured document.
type PostingExtractor interface {
	// Extract parses the raw document text. It never fails: fields that
	// cannot be located are left nil.
	Extract(raw string, filename string) *JobPosting
}

// String returns a pointer to s, or nil if s is empty.
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Value returns the string p points to, or "" when p is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
