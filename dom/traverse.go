package dom

import "golang.org/x/net/html"

// EdgeKind discriminates the two sides of a depth-first visit.
type EdgeKind uint8

const (
	// OpenEdge is yielded when the walk enters a node, before any of its
	// children.
	OpenEdge EdgeKind = iota
	// CloseEdge is yielded when the walk leaves a node, after all of its
	// children.
	CloseEdge
)

// Edge is a single traversal event.
type Edge struct {
	Kind EdgeKind
	Node *html.Node
}

// Traverse is a depth-first walk over a subtree. Every node in the subtree
// produces exactly one open edge and one close edge; open edges appear in
// document (pre-order) order. The walk needs no stack of its own, it
// follows the tree's parent and sibling links.
type Traverse struct {
	root    *html.Node
	cur     *html.Node
	kind    EdgeKind
	started bool
	done    bool
}

// NewTraverse starts a walk covering root and its entire subtree.
func NewTraverse(root *html.Node) *Traverse {
	return &Traverse{root: root}
}

// Root returns the node the walk started from.
func (t *Traverse) Root() *html.Node { return t.root }

// Next returns the next traversal edge. Once the walk is exhausted it keeps
// returning ok == false.
func (t *Traverse) Next() (Edge, bool) {
	if t.done {
		return Edge{}, false
	}
	if !t.started {
		t.started = true
		t.cur, t.kind = t.root, OpenEdge
		return Edge{Kind: OpenEdge, Node: t.root}, true
	}
	if t.kind == OpenEdge {
		if c := t.cur.FirstChild; c != nil {
			t.cur = c
		} else {
			t.kind = CloseEdge
		}
		return Edge{Kind: t.kind, Node: t.cur}, true
	}
	if t.cur == t.root {
		t.done = true
		return Edge{}, false
	}
	if s := t.cur.NextSibling; s != nil {
		t.cur, t.kind = s, OpenEdge
	} else {
		t.cur = t.cur.Parent
	}
	return Edge{Kind: t.kind, Node: t.cur}, true
}
