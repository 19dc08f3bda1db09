// Package goquery implements job posting extraction from captured pages
// using CSS-style queries over parsed HTML.
package goquery

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/tonyzdev/jobparse"
	"golang.org/x/net/html"
)

// Ensure Extractor implements jobparse.PostingExtractor at compile time.
var _ jobparse.PostingExtractor = (*Extractor)(nil)

// Markers in the captured page.
const (
	// InstantApplyMarker is the id of the on-platform apply button.
	InstantApplyMarker = "indeedApplyButton"
	// ExternalApplyPhrase labels the button that leads to a third-party site.
	ExternalApplyPhrase = "Apply on company site"
)

var (
	headRe = regexp.MustCompile(`(?is)<head(?:\s[^>]*)?>(.*?)</head>`)

	// The fragment is a quoted, backslash-escaped string in the capture.
	// The strict form ends at the first closing div followed by the quote;
	// the loose form runs to the next unescaped quote (or the end of a
	// truncated capture).
	fragmentRe      = regexp.MustCompile(`(?s)"(<div class=\\"fastviewjob.*?</div>)"`)
	fragmentLooseRe = regexp.MustCompile(`(?s)"(<div class=\\"fastviewjob(?:[^"\\]|\\.)*)(?:"|\z)`)

	externalApplyRe = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(ExternalApplyPhrase))
	applyStartRe    = regexp.MustCompile(`href=\\"(https?://[^"\\]+/applystart(?:[^"\\]|\\u0026)*)\\"`)
)

// Element queries within the fragment.
var (
	titleQuery       = ByAttr("h2", "data-testid", "jobsearch-JobInfoHeader-title")
	companyQuery     = ByAttr("div", "data-testid", "inlineHeader-companyName")
	locationQuery    = ByAttr("div", "data-testid", "inlineHeader-companyLocation")
	salaryTypeQuery  = ByID("div", "salaryInfoAndJobType")
	descriptionQuery = ByID("div", "jobDescriptionText")
	instantApply     = ByID("button", InstantApplyMarker)
)

// externalApplyAttr finds an external apply button by its rendered label.
var externalApplyAttr = Query{
	Tag:   "button",
	Attr:  "contenthtml",
	Match: externalApplyRe.MatchString,
}

// jobTypes are the recognized exact job type labels, lower-cased.
var jobTypes = map[string]bool{
	"full-time":  true,
	"part-time":  true,
	"contract":   true,
	"temporary":  true,
	"internship": true,
}

// Extractor derives job postings from captured job-board pages.
// It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses a raw capture. Missing elements leave their fields nil;
// nothing in the document causes an error.
func (e *Extractor) Extract(raw string, filename string) *jobparse.JobPosting {
	p := &jobparse.JobPosting{Filename: filename}

	e.extractHead(raw, p)

	var doc *goquery.Document
	if fragment, ok := FindFragment(raw); ok {
		var err error
		doc, err = goquery.NewDocumentFromReader(strings.NewReader(jobparse.UnescapeFragment(fragment)))
		if err != nil {
			doc = nil
		}
	}

	if doc != nil {
		e.extractFields(doc.Selection, p)
		e.extractApplyControls(doc.Selection, p)
	}

	if p.ApplyMethod == jobparse.ApplyUnset {
		e.extractApplyFromRaw(raw, p)
	}

	return p
}

// FindFragment locates the embedded job view markup in a raw capture. The
// returned fragment is still escaped.
func FindFragment(raw string) (string, bool) {
	if m := fragmentRe.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	if m := fragmentLooseRe.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "", false
}

// extractHead reads the job-title and scraped-at meta tags from the head.
func (e *Extractor) extractHead(raw string, p *jobparse.JobPosting) {
	m := headRe.FindStringSubmatch(raw)
	if m == nil {
		return
	}

	head, err := goquery.NewDocumentFromReader(strings.NewReader(m[1]))
	if err != nil {
		return
	}

	if content, ok := ByAttr("meta", "name", "job-title").First(head.Selection).Attr("content"); ok {
		p.JobTitle = jobparse.String(content)
	}
	if content, ok := ByAttr("meta", "name", "scraped-at").First(head.Selection).Attr("content"); ok {
		p.ScrapedAt = jobparse.String(content)
	}
}

// extractFields reads header, salary and description fields from the fragment.
func (e *Extractor) extractFields(root *goquery.Selection, p *jobparse.JobPosting) {
	if title := titleQuery.First(root); title.Length() > 0 {
		if span := title.Find("span").First(); span.Length() > 0 {
			if text := jobparse.StripTitleSuffix(span.Text()); text != "" {
				p.JobTitle = jobparse.String(text)
			}
		}
	}

	if company := companyQuery.First(root); company.Length() > 0 {
		if text, ok := textOf(company.Find("a")); ok {
			p.Company = jobparse.String(text)
		} else if text, ok := textOf(company); ok {
			p.Company = jobparse.String(text)
		}
	}

	if text, ok := textOf(locationQuery.First(root)); ok {
		p.Location = jobparse.String(text)
	}

	salaryTypeQuery.First(root).Find("span").Each(func(_ int, span *goquery.Selection) {
		text := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(span.Text()), "- "))
		switch classifySpan(text) {
		case spanSalary:
			p.Salary = jobparse.String(text)
		case spanJobType:
			p.JobType = jobparse.String(text)
		}
	})

	if desc := descriptionQuery.First(root); desc.Length() > 0 {
		p.FullDescription = jobparse.String(jobparse.CleanDescription(FlattenText(desc)))
		if inner, err := desc.Html(); err == nil {
			p.DescriptionHTML = inner
		}
	}
}

// extractApplyControls applies rules A and B: the instant apply button wins
// over an external apply button.
func (e *Extractor) extractApplyControls(root *goquery.Selection, p *jobparse.JobPosting) {
	if instantApply.Exists(root) {
		p.ApplyMethod = jobparse.ApplyIndeed
		p.ApplyURL = nil
		return
	}

	btn := root.Find("button").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return externalApplyRe.MatchString(strings.TrimSpace(s.Text()))
	}).First()
	if btn.Length() == 0 {
		btn = externalApplyAttr.First(root)
	}
	if btn.Length() == 0 {
		return
	}

	p.ApplyMethod = jobparse.ApplyExternal
	if href, ok := btn.Attr("href"); ok {
		p.ApplyURL = jobparse.String(html.UnescapeString(href))
	}
}

// extractApplyFromRaw applies rules C and D to the raw capture when the
// fragment did not settle the apply method. Both match the raw text exactly.
func (e *Extractor) extractApplyFromRaw(raw string, p *jobparse.JobPosting) {
	switch {
	case strings.Contains(raw, InstantApplyMarker):
		p.ApplyMethod = jobparse.ApplyIndeed
	case strings.Contains(raw, ExternalApplyPhrase):
		p.ApplyMethod = jobparse.ApplyExternal
		if m := applyStartRe.FindStringSubmatch(raw); m != nil {
			url := strings.ReplaceAll(m[1], `\u0026`, "&")
			p.ApplyURL = jobparse.String(html.UnescapeString(url))
		}
	}
}

type spanKind int

const (
	spanOther spanKind = iota
	spanSalary
	spanJobType
)

// classifySpan decides whether a salary section span holds pay or a job
// type. Pay is recognized first, so a span that could be both is pay.
func classifySpan(text string) spanKind {
	lower := strings.ToLower(text)
	switch {
	case text == "":
		return spanOther
	case hasCurrencySymbol(text) || strings.Contains(lower, "hour") || strings.Contains(lower, "year"):
		return spanSalary
	case jobTypes[lower]:
		return spanJobType
	case strings.Contains(lower, "full-time") || strings.Contains(lower, "part-time"):
		return spanJobType
	}
	return spanOther
}

func hasCurrencySymbol(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Sc, r) {
			return true
		}
	}
	return false
}
