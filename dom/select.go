package dom

import "golang.org/x/net/html"

// Matcher is the matching side of a compiled selector. The package never
// parses selectors; it only asks whether a candidate node matches,
// optionally relative to a scoping root.
type Matcher interface {
	// Match reports whether n matches with no scoping root bound.
	Match(n *html.Node) bool
	// MatchScoped reports whether n matches with scope bound as the
	// selector's scoping root. A nil scope means no root is bound.
	MatchScoped(n, scope *html.Node) bool
}

// Select lazily yields the elements of a subtree matching a selector, in
// document order. Calls past exhaustion are safe and keep returning
// ok == false.
type Select struct {
	scope   ElementRef // zero for whole-tree queries
	inner   *Traverse
	matcher Matcher
	index   int
}

// SelectAll begins a query over root's entire subtree, root itself
// included. No scoping root is bound, so scope-relative selectors match
// nothing.
func SelectAll(root *html.Node, m Matcher) *Select {
	return &Select{inner: NewTraverse(root), matcher: m}
}

// Next returns the next matching element. Close edges and non-matching
// open edges are skipped; the walk is left exactly after the returned
// match so the following call resumes there.
func (s *Select) Next() (ElementRef, bool) {
	for {
		edge, ok := s.inner.Next()
		if !ok {
			return ElementRef{}, false
		}
		if edge.Kind != OpenEdge {
			continue
		}
		el, ok := Wrap(edge.Node)
		if !ok {
			continue
		}
		if s.matcher.MatchScoped(edge.Node, s.scope.node) {
			s.index++
			return el, true
		}
	}
}

// NotFound returns the error this query would report if it had to fail at
// its current position: the scope anchor, the selector, and how many
// matches came out before the miss.
func (s *Select) NotFound() error {
	return &ElementNotFoundError{Scope: s.scope, Matcher: s.matcher, Index: s.index}
}

// TryNext returns the next match, or an *ElementNotFoundError once the
// query is exhausted.
func (s *Select) TryNext() (ElementRef, error) {
	return TryNext[ElementRef](s)
}
