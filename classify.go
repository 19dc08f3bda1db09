package jobparse

import (
	"regexp"
	"strings"
)

// Education tags in priority order.
const (
	EducationDoctorate = "PhD/Doctorate"
	EducationMaster    = "Master's"
	EducationBachelor  = "Bachelor's"
	EducationAssociate = "Associate's"
)

// Maximum number of values kept per category.
const (
	maxMajors     = 5
	maxIndustries = 2
)

// industryIntroLen is how much of the description industry keywords see.
const industryIntroLen = 500

var educationRules = []struct {
	tag string
	re  *regexp.Regexp
}{
	{EducationDoctorate, regexp.MustCompile(`(?i)phd|ph\.d|doctorate`)},
	{EducationMaster, regexp.MustCompile(`(?i)master['’]?s|ms\b|m\.s\.|mba|m\.a\.`)},
	{EducationBachelor, regexp.MustCompile(`(?i)bachelor['’]?s|bs\b|b\.s\.|ba\b|b\.a\.`)},
	{EducationAssociate, regexp.MustCompile(`(?i)associate['’]?s`)},
}

var majorPhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:degree|bachelor['’]?s?|master['’]?s?|bs|ba|ms|mba|phd)\s+(?:in|of)\s+([A-Za-z\s,&]+?)(?:\.|,|;|\bor\b|\band\b|\s+with|\s+required|\s+preferred)`),
	regexp.MustCompile(`(?i)\b(?:background|major|field)\s+in\s+([A-Za-z\s,&]+?)(?:\.|,|;|\bor\b|\band\b|\s+is|\s+required)`),
}

var (
	yearsExperienceRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:experience|exp)`)
	yearsRangeRe      = regexp.MustCompile(`(?i)(\d+)\s*[-–]\s*(\d+)\s*(?:years?|yrs?)\s+(?:of\s+)?(?:experience|exp)`)
	yearsMinimumRe    = regexp.MustCompile(`(?i)(?:minimum|at least|required)\s+(\d+)\+?\s*(?:years?|yrs?)`)
	yearsQualifiedRe  = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:work|professional|related)`)
)

var seniorityRules = []struct {
	tag string
	re  *regexp.Regexp
}{
	{"Entry-level", regexp.MustCompile(`(?i)\bentry[- ]?level\b`)},
	{"Senior", regexp.MustCompile(`(?i)\bsenior\b`)},
	{"Junior", regexp.MustCompile(`(?i)\bjunior\b`)},
	{"Early Career", regexp.MustCompile(`(?i)\bearly career\b`)},
}

// Ensure RequirementClassifier implements Classifier at compile time.
var _ Classifier = (*RequirementClassifier)(nil)

// RequirementClassifier derives requirement tags with ordered regular
// expression and keyword heuristics. It is a best-effort layer: nothing it
// does fails, and unmatched categories come back empty.
type RequirementClassifier struct {
	vocab *Vocabulary
}

// NewRequirementClassifier returns a classifier backed by vocab.
func NewRequirementClassifier(vocab *Vocabulary) *RequirementClassifier {
	return &RequirementClassifier{vocab: vocab}
}

// Classify applies every category heuristic to the posting.
func (c *RequirementClassifier) Classify(p *JobPosting) *Requirement {
	desc := Value(p.FullDescription)
	return &Requirement{
		EducationLevels: c.Education(desc),
		Majors:          c.Majors(desc),
		Experience:      c.Experience(desc),
		Industries:      c.Industries(desc, Value(p.Company), Value(p.JobTitle)),
	}
}

// Record classifies the posting and flattens the result for tabular output.
func (c *RequirementClassifier) Record(p *JobPosting) *RequirementRecord {
	return NewRequirementRecord(p, c.Classify(p))
}

// Education returns the degree levels mentioned in text. The checks are
// independent, so several levels may be returned, always in priority order.
func (c *RequirementClassifier) Education(text string) []string {
	var levels []string
	for _, rule := range educationRules {
		if rule.re.MatchString(text) {
			levels = append(levels, rule.tag)
		}
	}
	return levels
}

// Majors returns up to five fields of study mentioned in text: phrases such
// as "degree in X" first, then vocabulary majors.
func (c *RequirementClassifier) Majors(text string) []string {
	var candidates []string

	for _, re := range majorPhraseRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cleaned := strings.TrimSpace(m[1])
			if len(cleaned) > 3 && len(cleaned) < 100 {
				candidates = append(candidates, cleaned)
			}
		}
	}

	if c.vocab != nil {
		for i, re := range c.vocab.majorRes {
			if re.MatchString(text) {
				candidates = append(candidates, c.vocab.majors[i])
			}
		}
	}

	seen := make(map[string]bool)
	var majors []string
	for _, m := range candidates {
		key := strings.ToLower(strings.TrimSpace(m))
		if seen[key] || len(key) <= 2 {
			continue
		}
		seen[key] = true
		majors = append(majors, strings.TrimSpace(m))
		if len(majors) == maxMajors {
			break
		}
	}
	return majors
}

// Experience returns normalized year requirements ("3+ years",
// "2-4 years") followed by seniority tags, in detection order.
func (c *RequirementClassifier) Experience(text string) []string {
	var found []string

	for _, m := range yearsExperienceRe.FindAllStringSubmatch(text, -1) {
		found = append(found, m[1]+"+ years")
	}
	for _, m := range yearsRangeRe.FindAllStringSubmatch(text, -1) {
		found = append(found, m[1]+"-"+m[2]+" years")
	}
	for _, m := range yearsMinimumRe.FindAllStringSubmatch(text, -1) {
		found = append(found, m[1]+"+ years")
	}
	for _, m := range yearsQualifiedRe.FindAllStringSubmatch(text, -1) {
		found = append(found, m[1]+"+ years")
	}

	for _, rule := range seniorityRules {
		if rule.re.MatchString(text) {
			found = append(found, rule.tag)
		}
	}

	return dedupeFold(found)
}

// Industries returns at most two industry labels, in table order. Keywords
// are matched against the opening of the description or the company name
// depending on their scope. The title is accepted for symmetry with the
// other inputs but no keyword is scoped to it.
func (c *RequirementClassifier) Industries(description, company, title string) []string {
	if c.vocab == nil {
		return nil
	}

	intro := description
	if r := []rune(intro); len(r) > industryIntroLen {
		intro = string(r[:industryIntroLen])
	}
	scopes := map[Scope]string{
		ScopeDescription: strings.ToLower(intro),
		ScopeCompany:     strings.ToLower(company),
	}

	var industries []string
	for _, ind := range c.vocab.industries {
		for _, kw := range ind.Keywords {
			if strings.Contains(scopes[kw.Scope], kw.Keyword) {
				industries = append(industries, ind.Label)
				break
			}
		}
		if len(industries) == maxIndustries {
			break
		}
	}
	return industries
}

// dedupeFold removes case-insensitive duplicates, keeping first occurrences.
func dedupeFold(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
