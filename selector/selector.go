// Package selector compiles CSS selectors for matching against parsed HTML
// trees. Matching is delegated to cascadia; on top of it the package
// supports a scope-relative form, where a selector written with a leading
// :scope resolves against the anchor of the query it is used in rather
// than the document root.
// https://drafts.csswg.org/selectors-4/#the-scope-pseudo
package selector

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// relation ties a match candidate to the scoping root.
type relation uint8

const (
	relNone       relation = iota // no :scope; the scoping root is ignored
	relSelf                       // ":scope", the candidate is the root itself
	relChild                      // ":scope > rest", the candidate is a child of the root
	relDescendant                 // ":scope rest", the candidate is a strict descendant of the root
)

// Selector is a compiled selector. It is immutable and safe for concurrent
// use; matching never touches the tree beyond reading it.
type Selector struct {
	input string
	rel   relation
	group cascadia.SelectorGroup // nil for the bare ":scope" form
}

// Parse compiles a selector group. A leading ":scope" compound followed by
// nothing, a child combinator, or whitespace binds the query anchor;
// :scope anywhere else is rejected. Full :scope grammar support is not a
// goal here; the dom.Matcher interface admits an exact engine if one is
// ever needed.
func Parse(input string) (*Selector, error) {
	s := strings.TrimSpace(input)
	sel := &Selector{input: input}
	if s == ":scope" {
		sel.rel = relSelf
		return sel, nil
	}
	rest := s
	if strings.HasPrefix(s, ":scope") {
		rest = s[len(":scope"):]
		switch trimmed := strings.TrimLeft(rest, " \t\r\n"); {
		case strings.HasPrefix(trimmed, ">"):
			sel.rel = relChild
			rest = trimmed[1:]
		case trimmed != rest:
			sel.rel = relDescendant
			rest = trimmed
		default:
			return nil, errors.Errorf("selector: %q: :scope must stand alone or be followed by a combinator", input)
		}
	}
	if strings.Contains(rest, ":scope") {
		return nil, errors.Errorf("selector: %q: :scope is only supported as the leftmost compound", input)
	}
	group, err := cascadia.ParseGroup(strings.TrimSpace(rest))
	if err != nil {
		return nil, errors.Wrapf(err, "selector: parse %q", input)
	}
	sel.group = group
	return sel, nil
}

// MustParse is Parse for selectors known to be valid; it panics on error.
func MustParse(input string) *Selector {
	s, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return s
}

// Match reports whether n matches with no scoping root bound.
// Scope-relative selectors match nothing without a root.
func (s *Selector) Match(n *html.Node) bool { return s.MatchScoped(n, nil) }

// MatchScoped reports whether n matches, with scope bound as the scoping
// root. Only element nodes can match.
func (s *Selector) MatchScoped(n, scope *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch s.rel {
	case relNone:
		return s.group.Match(n)
	case relSelf:
		return scope != nil && n == scope
	case relChild:
		return scope != nil && n.Parent == scope && s.group.Match(n)
	case relDescendant:
		return scope != nil && n != scope && hasAncestor(n, scope) && s.group.Match(n)
	}
	return false
}

// String returns the selector as it was written.
func (s *Selector) String() string { return s.input }

// Equal reports whether two compiled selectors are interchangeable for
// diagnostic purposes: the same object, or compiled from the same input.
func (s *Selector) Equal(o *Selector) bool {
	return s == o || (o != nil && s.input == o.input)
}

func hasAncestor(n, root *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}
