package dom

import "golang.org/x/net/html"

// Text lazily yields the raw text fragments of a subtree in document
// order. The walk's root is an element and an element is never a text
// node, so unlike Select no priming skip is needed.
type Text struct {
	inner *Traverse
	index int
}

// Next returns the next text fragment. All non-text edges are skipped.
func (t *Text) Next() (string, bool) {
	for {
		edge, ok := t.inner.Next()
		if !ok {
			return "", false
		}
		if edge.Kind == OpenEdge && edge.Node.Type == html.TextNode {
			t.index++
			return edge.Node.Data, true
		}
	}
}

// NotFound returns the error this walk would report if it had to fail at
// its current position: the subtree root and how many fragments came out
// before the miss.
func (t *Text) NotFound() error {
	return &TextNotFoundError{Root: t.inner.Root(), Index: t.index}
}

// TryNext returns the next fragment, or a *TextNotFoundError once the walk
// is exhausted.
func (t *Text) TryNext() (string, error) {
	return TryNext[string](t)
}
