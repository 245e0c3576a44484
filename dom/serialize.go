package dom

import (
	"bytes"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// TraversalScope selects how much of an element's subtree the serializer
// covers.
type TraversalScope uint8

const (
	// IncludeNode serializes the element itself and its entire subtree.
	IncludeNode TraversalScope = iota
	// ChildrenOnly serializes the element's children, omitting the
	// element's own start and end tags.
	ChildrenOnly
)

// Serialize renders an element back to HTML text.
// https://html.spec.whatwg.org/multipage/parsing.html#serialising-html-fragments
//
// Rendering goes into a memory buffer from a well-formed, immutable tree,
// so a writer failure can only mean a broken invariant elsewhere; it panics
// instead of returning an error.
func Serialize(e ElementRef, scope TraversalScope) string {
	var buf bytes.Buffer
	switch scope {
	case IncludeNode:
		render(&buf, e.Node())
	case ChildrenOnly:
		for c := e.Node().FirstChild; c != nil; c = c.NextSibling {
			render(&buf, c)
		}
	}
	return buf.String()
}

func render(buf *bytes.Buffer, n *html.Node) {
	if err := html.Render(buf, n); err != nil {
		panic(errors.Wrap(err, "dom: render"))
	}
}
