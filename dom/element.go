package dom

import "golang.org/x/net/html"

// ElementRef is a borrowed view of an element node inside a parsed tree.
// It is a small value, cheap to copy, and two views compare equal exactly
// when they designate the same node. A view never outlives the tree it
// points into and never mutates it.
//
// Construct views with Wrap; the zero value designates no element and its
// methods panic.
type ElementRef struct {
	node *html.Node
}

// Node returns the element node behind the view. The classifying
// constructor guarantees the node is an element, so a view that violates
// that can only have been built by bypassing Wrap; this panics rather than
// returning an error.
func (e ElementRef) Node() *html.Node {
	if e.node == nil || e.node.Type != html.ElementNode {
		panic("dom: ElementRef does not designate an element node")
	}
	return e.node
}

// Name returns the element's tag name.
func (e ElementRef) Name() string { return e.Node().Data }

// Attr returns the value of the named attribute, if present.
func (e ElementRef) Attr(name string) (string, bool) {
	for _, a := range e.Node().Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// RequireAttr returns the value of the named attribute, or an
// *AttrNotFoundError carrying this element and the requested name so the
// caller can report the miss without re-deriving context.
func (e ElementRef) RequireAttr(name string) (string, error) {
	if v, ok := e.Attr(name); ok {
		return v, nil
	}
	return "", &AttrNotFoundError{Element: e, Attr: name}
}

// Select begins a lazy query over this element's descendants. The element
// is never a candidate of its own query: the walk's first open edge is
// consumed up front, and every later candidate is matched with this element
// bound as the selector's scoping root.
// https://drafts.csswg.org/selectors-4/#the-scope-pseudo
func (e ElementRef) Select(m Matcher) *Select {
	inner := NewTraverse(e.Node())
	inner.Next() // drop the anchor's own open edge
	return &Select{scope: e, inner: inner, matcher: m}
}

// Text begins a lazy walk over the text fragments of this element's
// subtree, in document order.
func (e ElementRef) Text() *Text {
	return &Text{inner: NewTraverse(e.Node())}
}

// ChildElements iterates over the direct children that are elements. The
// sequence is single-pass; call again to rescan. The element itself is
// never part of it.
func (e ElementRef) ChildElements() *ChildElements {
	return &ChildElements{next: e.Node().FirstChild}
}

// DescendantElements iterates over every element of this element's subtree
// in document order. The first item is the element itself: the walk's first
// open edge is the anchor, and it is deliberately not skipped.
func (e ElementRef) DescendantElements() *DescendantElements {
	return &DescendantElements{inner: NewTraverse(e.Node())}
}

// HTML serializes this element and its entire subtree.
func (e ElementRef) HTML() string { return Serialize(e, IncludeNode) }

// InnerHTML serializes only this element's children, without the element's
// own start and end tags.
func (e ElementRef) InnerHTML() string { return Serialize(e, ChildrenOnly) }

// ChildElements iterates an element's direct children, skipping every
// non-element node.
type ChildElements struct {
	next *html.Node
}

// Next returns the next child element. Once the siblings run out it keeps
// returning ok == false.
func (it *ChildElements) Next() (ElementRef, bool) {
	for n := it.next; n != nil; n = n.NextSibling {
		if el, ok := Wrap(n); ok {
			it.next = n.NextSibling
			return el, true
		}
	}
	it.next = nil
	return ElementRef{}, false
}

// DescendantElements iterates the elements of a subtree in document order,
// anchor included.
type DescendantElements struct {
	inner *Traverse
}

// Next returns the next element in pre-order.
func (it *DescendantElements) Next() (ElementRef, bool) {
	for {
		edge, ok := it.inner.Next()
		if !ok {
			return ElementRef{}, false
		}
		if edge.Kind != OpenEdge {
			continue
		}
		if el, ok := Wrap(edge.Node); ok {
			return el, true
		}
	}
}
