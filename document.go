// Package scrape parses HTML documents and fragments and exposes element
// views with lazy, selector-scoped queries over them. Parsing and the tree
// itself belong to golang.org/x/net/html; selectors are compiled by the
// selector package; the dom package does the querying.
package scrape

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heathj/scrape/dom"
)

// Document owns a parsed, immutable HTML tree. All views and iterators
// handed out borrow from that tree; they stay valid as long as the
// Document does.
type Document struct {
	doc *html.Node
}

// Parse reads and parses a complete HTML document.
func Parse(r io.Reader) (*Document, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "scrape: parse document")
	}
	return &Document{doc: n}, nil
}

// ParseString parses a complete HTML document held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseFragment parses an HTML fragment as it would appear inside a body
// element and re-roots it under a synthetic html element, so that a
// fragment always has a single root element.
func ParseFragment(s string) (*Document, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return nil, errors.Wrap(err, "scrape: parse fragment")
	}
	root := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(root)
	return &Document{doc: doc}, nil
}

// Root returns the document node at the top of the tree.
func (d *Document) Root() *html.Node { return d.doc }

// RootElement returns the document's root element: the html element for
// documents, the synthetic wrapper for fragments. The parser always
// produces one, so a tree without one is a broken invariant and panics.
func (d *Document) RootElement() dom.ElementRef {
	for c := d.doc.FirstChild; c != nil; c = c.NextSibling {
		if el, ok := dom.Wrap(c); ok {
			return el
		}
	}
	panic("scrape: document has no root element")
}

// Select begins a lazy query over the whole document, the root element
// included. No scoping root is bound; use ElementRef.Select to anchor a
// query at an element instead.
func (d *Document) Select(m dom.Matcher) *dom.Select {
	return dom.SelectAll(d.doc, m)
}
