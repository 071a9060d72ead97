package xmlb

import (
	"github.com/antchfx/xpath"
	"github.com/beevik/etree"
)

// Document wraps exactly one underlying etree document. It is created
// by New (building) or by the Parse family / Wrap (traversal), and is
// only valid for the duration of the call graph that created it.
type Document struct {
	doc  *etree.Document
	root *Element
}

// Element wraps exactly one underlying etree element. The parent
// pointer is a non-owning back-reference; ownership flows strictly
// from parent to child inside the engine's tree.
type Element struct {
	doc    *Document
	parent *Element
	elem   *etree.Element
}

// Attrs is a short-lived attribute scope bound to one Element.
// Every Set goes straight through to the underlying element; the
// first error is recorded and reported by Done.
type Attrs struct {
	elem *Element
	err  error
}

// Attr is a read-only view of a single attribute on an element.
type Attr struct {
	elem *etree.Element
	attr etree.Attr
}

// Query is a compiled XPath expression. Compile once via CompileQuery,
// evaluate any number of times against any scope.
type Query struct {
	expr string
	x    *xpath.Expr
}

// WalkFunc is applied to every element visited by Walk. Returning an
// error stops the walk and propagates the error to the caller.
type WalkFunc func(*Element) error
