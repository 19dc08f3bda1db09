package jobparse

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms a description fragment into Markdown.
	Convert(html string) (string, error)
}
