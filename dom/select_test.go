package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/scrape/selector"
)

const scopeFixture = `<div><b>1</b><span><span><b>2</b></span><b>3</b></span></div>`

func TestSelectScoped(t *testing.T) {
	root := parseFragment(t, scopeFixture)
	outer := firstMatch(t, root, "div > span")

	matches := outer.Select(selector.MustParse(":scope > b"))
	el, ok := matches.Next()
	require.True(t, ok)
	assert.Equal(t, "3", el.InnerHTML(), "only the b directly under the anchor, not the nested one")

	_, ok = matches.Next()
	assert.False(t, ok)
}

func TestSelectExcludesAnchor(t *testing.T) {
	root := parseFragment(t, `<div id="outer"><div id="inner"></div></div>`)
	outer := firstMatch(t, root, "#outer")

	matches := outer.Select(selector.MustParse("div"))
	el, err := matches.TryNext()
	require.NoError(t, err)
	id, _ := el.Attr("id")
	assert.Equal(t, "inner", id)

	_, ok := matches.Next()
	assert.False(t, ok, "the anchor never matches its own query")

	// from one level up the outer div is a candidate again
	rootEl, _ := Wrap(root)
	el, err = rootEl.Select(selector.MustParse("div")).TryNext()
	require.NoError(t, err)
	id, _ = el.Attr("id")
	assert.Equal(t, "outer", id)
}

func TestSelectDocumentOrder(t *testing.T) {
	root := parseFragment(t, scopeFixture)
	rootEl, _ := Wrap(root)

	matches := rootEl.Select(selector.MustParse("b"))
	var texts []string
	for {
		el, ok := matches.Next()
		if !ok {
			break
		}
		texts = append(texts, el.InnerHTML())
	}
	assert.Equal(t, []string{"1", "2", "3"}, texts)
}

func TestSelectFused(t *testing.T) {
	root := parseFragment(t, scopeFixture)
	rootEl, _ := Wrap(root)

	matches := rootEl.Select(selector.MustParse("b"))
	for {
		if _, ok := matches.Next(); !ok {
			break
		}
	}
	for i := 0; i < 3; i++ {
		_, ok := matches.Next()
		assert.False(t, ok, "call %d past exhaustion", i)
	}
}

func TestSelectTryNextError(t *testing.T) {
	root := parseFragment(t, scopeFixture)
	anchor := firstMatch(t, root, "div")
	sel := selector.MustParse("i")

	_, err := anchor.Select(sel).TryNext()
	var notFound *ElementNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, anchor, notFound.Scope)
	assert.Equal(t, Matcher(sel), notFound.Matcher)
	assert.Zero(t, notFound.Index)
	assert.Contains(t, err.Error(), "<div>")
}

func TestSelectTryNextCountsMatches(t *testing.T) {
	root := parseFragment(t, scopeFixture)
	anchor := firstMatch(t, root, "div")

	matches := anchor.Select(selector.MustParse("b"))
	for i := 0; i < 3; i++ {
		_, err := matches.TryNext()
		require.NoError(t, err, "match %d", i)
	}

	_, err := matches.TryNext()
	var notFound *ElementNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 3, notFound.Index)
}

func TestSelectAllIncludesRoot(t *testing.T) {
	root := parseFragment(t, "<p></p>")

	el, ok := SelectAll(root, selector.MustParse("html")).Next()
	require.True(t, ok)
	assert.Same(t, root, el.Node())
}

func TestSelectAllNotFoundDescribesDocument(t *testing.T) {
	root := parseFragment(t, "<p></p>")

	_, err := SelectAll(root, selector.MustParse("i")).TryNext()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the document")
}
