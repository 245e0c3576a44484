package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heathj/scrape/selector"
)

// parseFragment parses an HTML fragment in a body context and roots it
// under a synthetic html element, the same shape callers hand to this
// package.
func parseFragment(t *testing.T, s string) *html.Node {
	t.Helper()
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	require.NoError(t, err)
	root := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root
}

// firstMatch returns the first element under root matching sel.
func firstMatch(t *testing.T, root *html.Node, sel string) ElementRef {
	t.Helper()
	el, err := SelectAll(root, selector.MustParse(sel)).TryNext()
	require.NoError(t, err)
	return el
}

// elementNames drains an element iterator into tag names.
func elementNames(it Iterator[ElementRef]) []string {
	var out []string
	for {
		el, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, el.Name())
	}
}

// textFragments drains a text iterator.
func textFragments(it Iterator[string]) []string {
	var out []string
	for {
		s, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}
