package jobparse

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// UnescapeFragment reverses the string escaping applied to markup embedded
// in a captured page: backslash-escaped quotes first, then HTML entities.
func UnescapeFragment(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\"`, `"`)
	return html.UnescapeString(s)
}

// CleanDescription tidies newline-separated description text.
// Runs of three or more newlines collapse to a single blank line, each line
// is trimmed, and the result is trimmed and NFC-normalized.
func CleanDescription(text string) string {
	if text == "" {
		return ""
	}

	text = blankRunRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	return norm.NFC.String(strings.TrimSpace(text))
}

const titleSuffix = " - job post"

// StripTitleSuffix removes the job board's " - job post" suffix from a
// header title and trims the result. A title that is only the suffix
// becomes empty. Applying it twice is a no-op.
func StripTitleSuffix(title string) string {
	title = strings.TrimRightFunc(title, unicode.IsSpace)
	for {
		switch {
		case strings.HasSuffix(title, titleSuffix):
			title = strings.TrimRightFunc(strings.TrimSuffix(title, titleSuffix), unicode.IsSpace)
		case strings.TrimSpace(title) == strings.TrimSpace(titleSuffix):
			return ""
		default:
			return strings.TrimSpace(title)
		}
	}
}
