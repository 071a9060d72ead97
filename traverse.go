package xmlb

import "iter"

// MissingElement produces a "missing" callback that fails with a
// NotFoundError carrying the given message. Supply it to FindElement
// or Query.EvaluateFirst when absence of the node is an error.
func MissingElement(msg string) func() (*Element, error) {
	return func() (*Element, error) {
		return nil, NotFoundError{Message: msg}
	}
}

// MissingAttribute is the FindAttribute counterpart of
// MissingElement.
func MissingAttribute(msg string) func() (Attr, error) {
	return func() (Attr, error) {
		return Attr{}, NotFoundError{Message: msg}
	}
}

// FindElement returns the first direct child element with the given
// tag name. The missing callback decides what happens when no child
// matches: it may produce a substitute element or an error.
// FindElement itself never fails on a missing child; passing nil
// installs a callback that returns a NotFoundError.
//
// The tag may carry a namespace prefix ("p:item"); alternatively
// WithNamespace restricts matches to a namespace URI.
func (e *Element) FindElement(tag string, missing func() (*Element, error), options ...FindOption) (*Element, error) {
	uri, hasURI := findNamespace(options)

	space, local := splitTag(tag)
	for _, c := range e.elem.ChildElements() {
		if c.Tag != local {
			continue
		}
		if space != "" && c.Space != space {
			continue
		}
		if hasURI && c.NamespaceURI() != uri {
			continue
		}
		return &Element{doc: e.doc, parent: e, elem: c}, nil
	}

	if missing == nil {
		missing = MissingElement("element " + tag + " not found under " + e.path())
	}
	return missing()
}

// FindElements produces a lazy sequence of the direct child elements
// whose tag name is in names, in document order. An empty name set
// matches every child element. The sequence is single use: ranging
// over it a second time yields nothing.
func (e *Element) FindElements(names ...string) iter.Seq[*Element] {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return e.FindElementsFunc(func(c *Element) bool {
		if len(set) == 0 {
			return true
		}
		_, ok := set[c.Tag()]
		return ok
	})
}

// FindElementsFunc is the predicate form of FindElements.
func (e *Element) FindElementsFunc(pred func(*Element) bool) iter.Seq[*Element] {
	var done bool
	return func(yield func(*Element) bool) {
		if done {
			return
		}
		done = true
		for _, c := range e.elem.ChildElements() {
			w := &Element{doc: e.doc, parent: e, elem: c}
			if !pred(w) {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// FindAttribute returns a view of the named attribute, deferring to
// the missing callback when the element does not carry it. Passing a
// nil callback installs one that returns a NotFoundError.
func (e *Element) FindAttribute(name string, missing func() (Attr, error), options ...FindOption) (Attr, error) {
	uri, hasURI := findNamespace(options)

	space, local := splitTag(name)
	for _, a := range e.elem.Attr {
		if a.Key != local {
			continue
		}
		if space != "" && a.Space != space {
			continue
		}
		if hasURI && a.NamespaceURI() != uri {
			continue
		}
		return Attr{elem: e.elem, attr: a}, nil
	}

	if missing == nil {
		missing = MissingAttribute("attribute " + name + " not found on " + e.path())
	}
	return missing()
}

// FindAttributes produces a lazy, single-use sequence of the
// element's attributes accepted by pred, in the order the engine
// stores them.
func (e *Element) FindAttributes(pred func(Attr) bool) iter.Seq[Attr] {
	var done bool
	return func(yield func(Attr) bool) {
		if done {
			return
		}
		done = true
		for _, a := range e.elem.Attr {
			v := Attr{elem: e.elem, attr: a}
			if pred != nil && !pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Walk applies fn to the element and every descendant element, depth
// first in document order. The first error stops the walk.
func (e *Element) Walk(fn WalkFunc) error {
	if e == nil {
		return ErrNilElement
	}
	if err := fn(e); err != nil {
		return err
	}
	for _, c := range e.elem.ChildElements() {
		w := &Element{doc: e.doc, parent: e, elem: c}
		if err := w.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

func findNamespace(options []FindOption) (string, bool) {
	for _, o := range options {
		switch o.Ident().(type) {
		case identNamespace:
			return o.Value().(string), true
		}
	}
	return "", false
}
