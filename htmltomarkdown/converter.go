// Package htmltomarkdown renders job description markup as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/tonyzdev/jobparse"
)

// Ensure Converter implements jobparse.Converter at compile time.
var _ jobparse.Converter = (*Converter)(nil)

// DefaultDomain is the job board that captured descriptions link into.
const DefaultDomain = "https://www.indeed.com"

// Converter wraps html-to-markdown to convert description fragments.
// Relative links such as company pages resolve against the job board.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain sets the scheme and host relative links resolve against.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = strings.TrimRight(domain, "/")
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	c := &Converter{conv: conv, domain: DefaultDomain}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms description HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", jobparse.Errorf(jobparse.EINVALID, "empty description HTML")
	}

	result, err := c.conv.ConvertString(html, converter.WithDomain(c.domain))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
