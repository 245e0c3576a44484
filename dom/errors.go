package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// AttrNotFoundError reports a RequireAttr miss. It carries the element the
// lookup ran against and the requested attribute name.
type AttrNotFoundError struct {
	Element ElementRef
	Attr    string
}

func (e *AttrNotFoundError) Error() string {
	return fmt.Sprintf("dom: no attribute %q on <%s>", e.Attr, e.Element.Name())
}

// ElementNotFoundError reports an exhausted element query: the anchor the
// query was scoped to, the selector that was applied, and the number of
// matches produced before the query ran dry.
type ElementNotFoundError struct {
	Scope   ElementRef
	Matcher Matcher
	Index   int
}

func (e *ElementNotFoundError) Error() string {
	where := "the document"
	if e.Scope != (ElementRef{}) {
		where = "<" + e.Scope.Name() + ">"
	}
	return fmt.Sprintf("dom: no element matching %v under %s after %d match(es)", e.Matcher, where, e.Index)
}

// TextNotFoundError reports an exhausted text query: the subtree root the
// walk covered and the number of fragments produced before the walk ran
// dry.
type TextNotFoundError struct {
	Root  *html.Node
	Index int
}

func (e *TextNotFoundError) Error() string {
	return fmt.Sprintf("dom: no text under <%s> after %d fragment(s)", e.Root.Data, e.Index)
}
