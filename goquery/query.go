package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Query selects elements by tag name and an attribute predicate, e.g.
// div[data-testid=inlineHeader-companyName]. Attribute values are compared
// exactly; Match, when set, replaces the equality check.
type Query struct {
	Tag   string
	Attr  string
	Value string
	Match func(value string) bool
}

// ByAttr returns a Query for tag elements whose attr equals value.
func ByAttr(tag, attr, value string) Query {
	return Query{Tag: tag, Attr: attr, Value: value}
}

// ByID returns a Query for the tag element with the given id.
func ByID(tag, id string) Query {
	return Query{Tag: tag, Attr: "id", Value: id}
}

// All returns every element under sel matching the query, in document order.
func (q Query) All(sel *goquery.Selection) *goquery.Selection {
	if sel == nil {
		return &goquery.Selection{}
	}
	tag := q.Tag
	if tag == "" {
		tag = "*"
	}
	return sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return q.matches(s)
	})
}

// First returns the first element under sel matching the query.
// The result is empty when nothing matches.
func (q Query) First(sel *goquery.Selection) *goquery.Selection {
	return q.All(sel).First()
}

// Exists reports whether any element under sel matches the query.
func (q Query) Exists(sel *goquery.Selection) bool {
	return q.All(sel).Length() > 0
}

func (q Query) matches(s *goquery.Selection) bool {
	if q.Attr == "" {
		return true
	}
	v, ok := s.Attr(q.Attr)
	if !ok {
		return false
	}
	if q.Match != nil {
		return q.Match(v)
	}
	return v == q.Value
}

// textOf returns the trimmed text of the first element in sel, and false
// when sel is empty.
func textOf(sel *goquery.Selection) (string, bool) {
	if sel == nil || sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.First().Text()), true
}
