package jobparse

import (
	"context"
	"strings"
)

// Requirement holds the coarse requirement tags derived from a posting.
type Requirement struct {
	EducationLevels []string `json:"education_levels"`
	Majors          []string `json:"majors"`
	Experience      []string `json:"experience"`
	Industries      []string `json:"industry"`
}

// Classifier derives requirement tags from a posting.
type Classifier interface {
	Classify(p *JobPosting) *Requirement
}

// RequirementColumns is the fixed column order of the tabular output.
var RequirementColumns = []string{
	"job_title", "company", "location", "salary", "job_type",
	"education", "major", "experience", "industry",
	"apply_method", "apply_url", "url",
}

// RequirementRecord is the flattened, tabular form of a classified posting.
// Missing values are empty strings.
type RequirementRecord struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	JobType     string `json:"job_type"`
	Education   string `json:"education"`
	Major       string `json:"major"`
	Experience  string `json:"experience"`
	Industry    string `json:"industry"`
	ApplyMethod string `json:"apply_method"`
	ApplyURL    string `json:"apply_url"`
	URL         string `json:"url"`
}

// NewRequirementRecord combines a posting with its requirement tags.
func NewRequirementRecord(p *JobPosting, req *Requirement) *RequirementRecord {
	return &RequirementRecord{
		JobTitle:    Value(p.JobTitle),
		Company:     Value(p.Company),
		Location:    Value(p.Location),
		Salary:      Value(p.Salary),
		JobType:     Value(p.JobType),
		Education:   JoinTags(req.EducationLevels),
		Major:       JoinTags(req.Majors),
		Experience:  JoinTags(req.Experience),
		Industry:    JoinTags(req.Industries),
		ApplyMethod: string(p.ApplyMethod),
		ApplyURL:    Value(p.ApplyURL),
		URL:         Value(p.URL),
	}
}

// Row returns the record's values in RequirementColumns order.
func (r *RequirementRecord) Row() []string {
	return []string{
		r.JobTitle, r.Company, r.Location, r.Salary, r.JobType,
		r.Education, r.Major, r.Experience, r.Industry,
		r.ApplyMethod, r.ApplyURL, r.URL,
	}
}

// RequirementWriter persists classified records.
type RequirementWriter interface {
	WriteRequirements(ctx context.Context, records []*RequirementRecord) error
}

// JoinTags joins tags the way the tabular output expects them.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
