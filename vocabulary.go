package jobparse

import (
	"regexp"
	"strings"
)

// Scope names the text an industry keyword is matched against.
type Scope string

// Scope values.
const (
	// ScopeDescription matches against the opening of the description.
	ScopeDescription Scope = "description"
	// ScopeCompany matches against the company name.
	ScopeCompany Scope = "company"
)

// IndustryKeyword is a lower-case substring searched for within a scope.
type IndustryKeyword struct {
	Keyword string
	Scope   Scope
}

// Industry is one row of the ordered industry table.
type Industry struct {
	Label    string
	Keywords []IndustryKeyword
}

// Vocabulary holds the reference tables used by the requirement classifier:
// the curated list of major names and the ordered industry keyword table.
// A Vocabulary is immutable once constructed and safe for concurrent use.
type Vocabulary struct {
	majors     []string
	majorRes   []*regexp.Regexp
	industries []Industry
}

// NewVocabulary builds a Vocabulary from the given tables, copying them and
// compiling a word-boundary matcher for each major.
func NewVocabulary(majors []string, industries []Industry) (*Vocabulary, error) {
	v := &Vocabulary{
		majors:     make([]string, 0, len(majors)),
		majorRes:   make([]*regexp.Regexp, 0, len(majors)),
		industries: make([]Industry, 0, len(industries)),
	}

	for _, major := range majors {
		if major == "" {
			return nil, Errorf(EINVALID, "empty major name")
		}
		v.majors = append(v.majors, major)
		v.majorRes = append(v.majorRes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(major)+`\b`))
	}

	for _, ind := range industries {
		if ind.Label == "" {
			return nil, Errorf(EINVALID, "industry label required")
		}
		keywords := make([]IndustryKeyword, len(ind.Keywords))
		for i, kw := range ind.Keywords {
			if kw.Keyword == "" {
				return nil, Errorf(EINVALID, "industry %q: empty keyword", ind.Label)
			}
			if kw.Scope != ScopeDescription && kw.Scope != ScopeCompany {
				return nil, Errorf(EINVALID, "industry %q: unknown scope %q", ind.Label, kw.Scope)
			}
			keywords[i] = IndustryKeyword{Keyword: strings.ToLower(kw.Keyword), Scope: kw.Scope}
		}
		v.industries = append(v.industries, Industry{Label: ind.Label, Keywords: keywords})
	}

	return v, nil
}

// Majors returns a copy of the major names in vocabulary order.
func (v *Vocabulary) Majors() []string {
	return append([]string(nil), v.majors...)
}

// Industries returns a copy of the industry table in priority order.
func (v *Vocabulary) Industries() []Industry {
	out := make([]Industry, len(v.industries))
	for i, ind := range v.industries {
		out[i] = Industry{
			Label:    ind.Label,
			Keywords: append([]IndustryKeyword(nil), ind.Keywords...),
		}
	}
	return out
}
