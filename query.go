package xmlb

import (
	"iter"

	"github.com/antchfx/xpath"
	"github.com/beevik/etree"
	"github.com/lestrrat-go/pdebug"
)

// CompileQuery compiles an XPath expression once, so repeated
// evaluations reuse the compiled form. Compilation failures are
// reported here, eagerly, as a QueryCompileError; Evaluate* never
// reports syntax errors.
func CompileQuery(expr string) (q *Query, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("xmlb.CompileQuery %s", expr).BindError(&err)
		defer g.End()
	}

	x, xerr := xpath.Compile(expr)
	if xerr != nil {
		return nil, QueryCompileError{Expr: expr, Err: xerr}
	}
	return &Query{expr: expr, x: x}, nil
}

// MustCompileQuery is CompileQuery that panics on failure, for
// expressions known valid at compile time.
func MustCompileQuery(expr string) *Query {
	q, err := CompileQuery(expr)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string {
	return q.expr
}

// EvaluateFirst returns the first element matching the query within
// scope, in document order. The missing callback works exactly as in
// FindElement.
func (q *Query) EvaluateFirst(scope *Element, missing func() (*Element, error)) (*Element, error) {
	if scope == nil {
		return nil, BuildError{Path: "/", Err: ErrNilElement}
	}

	it := q.x.Select(newNavigator(scope))
	for it.MoveNext() {
		nav := it.Current().(*navigator)
		if el := nav.element(); el != nil {
			return wrapQueried(scope, el), nil
		}
	}

	if missing == nil {
		missing = MissingElement("no match for query " + q.expr + " under " + scope.path())
	}
	return missing()
}

// EvaluateAll produces a lazy, single-use sequence of every element
// matching the query within scope, in document order. Non-element
// matches (attributes, text) are skipped.
func (q *Query) EvaluateAll(scope *Element) iter.Seq[*Element] {
	var done bool
	return func(yield func(*Element) bool) {
		if done || scope == nil {
			return
		}
		done = true
		it := q.x.Select(newNavigator(scope))
		for it.MoveNext() {
			nav := it.Current().(*navigator)
			el := nav.element()
			if el == nil {
				continue
			}
			if !yield(wrapQueried(scope, el)) {
				return
			}
		}
	}
}

// wrapQueried wraps an element located by a query. Matches can be
// arbitrarily deep, so the parent wrapper is left to be recovered
// from the engine's parent pointer on demand.
func wrapQueried(scope *Element, el *etree.Element) *Element {
	if el == scope.elem {
		return scope
	}
	return &Element{doc: scope.doc, elem: el}
}
