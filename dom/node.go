// Package dom provides read-only element views over an already-parsed,
// immutable HTML tree, and lazy traversal-based queries over them. The tree
// itself belongs to golang.org/x/net/html; nothing here mutates it.
package dom

import "golang.org/x/net/html"

// Wrap returns an element view over n iff n's payload is an element. Any
// other node kind (text, comment, doctype, document, ...) yields no view;
// that is the normal outcome when classifying nodes met during traversal,
// not an error.
func Wrap(n *html.Node) (ElementRef, bool) {
	if n == nil || n.Type != html.ElementNode {
		return ElementRef{}, false
	}
	return ElementRef{node: n}, true
}
