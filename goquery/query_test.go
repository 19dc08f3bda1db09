package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyzdev/jobparse/goquery"
)

func parse(t *testing.T, html string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("matches tag and attribute value exactly", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<div data-testid="a">one</div><span data-testid="a">two</span><div data-testid="ab">three</div>`)

		sel := goquery.ByAttr("div", "data-testid", "a").All(root)

		require.Equal(t, 1, sel.Length())
		assert.Equal(t, "one", sel.Text())
	})

	t.Run("ByID selects by id", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<button id="other">x</button><button id="indeedApplyButton">Apply now</button>`)

		sel := goquery.ByID("button", "indeedApplyButton").First(root)

		assert.Equal(t, "Apply now", sel.Text())
	})

	t.Run("Match replaces equality", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<button label="Apply on company site">go</button>`)
		q := goquery.Query{
			Tag:   "button",
			Attr:  "label",
			Match: func(v string) bool { return strings.HasPrefix(v, "Apply") },
		}

		assert.True(t, q.Exists(root))
	})

	t.Run("empty tag matches any element", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<section id="x">a</section><p id="x">b</p>`)

		sel := goquery.Query{Attr: "id", Value: "x"}.All(root)

		assert.Equal(t, 2, sel.Length())
	})

	t.Run("missing elements give an empty selection", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<p>nothing here</p>`)

		assert.False(t, goquery.ByID("div", "jobDescriptionText").Exists(root))
		assert.Equal(t, 0, goquery.ByID("div", "jobDescriptionText").First(root).Length())
		assert.Equal(t, 0, goquery.ByID("div", "x").All(nil).Length())
	})
}

func TestFlattenText(t *testing.T) {
	t.Parallel()

	t.Run("joins trimmed text nodes with newlines", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<div id="d"><p>  First line </p>
			<ul><li>One</li><li> <b>Two</b> parts </li></ul></div>`)

		text := goquery.FlattenText(root.Find("#d"))

		assert.Equal(t, "First line\nOne\nTwo\nparts", text)
	})

	t.Run("skips script and style", func(t *testing.T) {
		t.Parallel()

		root := parse(t, `<div id="d"><style>p{}</style><p>Visible</p><script>var x;</script></div>`)

		assert.Equal(t, "Visible", goquery.FlattenText(root.Find("#d")))
	})

	t.Run("empty selection gives empty text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", goquery.FlattenText(nil))
	})
}
