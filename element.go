package xmlb

import (
	"strings"

	"github.com/beevik/etree"
)

func createElement(d *Document, parent *Element, under *etree.Element, tag string, options []CreateOption) (*Element, error) {
	var prefix, uri string
	var hasURI bool
	for _, o := range options {
		switch o.Ident().(type) {
		case identPrefix:
			prefix = o.Value().(string)
		case identNamespace:
			uri = o.Value().(string)
			hasURI = true
		}
	}

	if err := validateName(tag); err != nil {
		return nil, BuildError{Path: childPath(parent, tag), Err: err}
	}
	full := tag
	if prefix != "" {
		if err := validateNCName(prefix); err != nil {
			return nil, BuildError{Path: childPath(parent, tag), Err: err}
		}
		full = prefix + ":" + tag
	}

	el := under.CreateElement(full)
	if hasURI {
		if prefix != "" {
			el.CreateAttr("xmlns:"+prefix, uri)
		} else {
			el.CreateAttr("xmlns", uri)
		}
	}

	return &Element{doc: d, parent: parent, elem: el}, nil
}

// AddElement creates and appends a new child element, and returns the
// wrapper for the child so that construction can continue from there.
func (e *Element) AddElement(tag string, options ...CreateOption) (*Element, error) {
	if e == nil {
		return nil, BuildError{Path: "/", Err: ErrNilElement}
	}
	return createElement(e.doc, e, e.elem, tag, options)
}

// AddTextElement creates a child element containing only the given
// text content. Unlike AddElement it returns the receiver, so sibling
// leaf elements can be chained.
func (e *Element) AddTextElement(tag string, content interface{}, options ...CreateOption) (*Element, error) {
	child, err := e.AddElement(tag, options...)
	if err != nil {
		return nil, err
	}
	child.elem.CreateText(stringify(content))
	return e, nil
}

// SetAttribute stringifies value and writes it onto the underlying
// element. Setting the same name twice overwrites the previous value
// (last write wins). Returns the receiver for chaining.
func (e *Element) SetAttribute(name string, value interface{}, options ...CreateOption) (*Element, error) {
	if e == nil {
		return nil, BuildError{Path: "/", Err: ErrNilElement}
	}

	var prefix string
	for _, o := range options {
		switch o.Ident().(type) {
		case identPrefix:
			prefix = o.Value().(string)
		}
	}

	if err := validateName(name); err != nil {
		return nil, BuildError{Path: e.path() + "/@" + name, Err: err}
	}
	full := name
	if prefix != "" {
		if err := validateNCName(prefix); err != nil {
			return nil, BuildError{Path: e.path() + "/@" + name, Err: err}
		}
		full = prefix + ":" + name
	}

	e.elem.CreateAttr(full, stringify(value))
	return e, nil
}

// AddText appends a text node and returns the receiver.
func (e *Element) AddText(content interface{}) (*Element, error) {
	if e == nil {
		return nil, BuildError{Path: "/", Err: ErrNilElement}
	}
	e.elem.CreateText(stringify(content))
	return e, nil
}

// AddCData appends a CDATA section and returns the receiver.
func (e *Element) AddCData(content string) (*Element, error) {
	if e == nil {
		return nil, BuildError{Path: "/", Err: ErrNilElement}
	}
	e.elem.CreateCData(content)
	return e, nil
}

// AddComment appends a comment node and returns the receiver.
func (e *Element) AddComment(content string) (*Element, error) {
	if e == nil {
		return nil, BuildError{Path: "/", Err: ErrNilElement}
	}
	e.elem.CreateComment(content)
	return e, nil
}

// Tag returns the local tag name.
func (e *Element) Tag() string {
	return e.elem.Tag
}

// Name returns the tag name including any namespace prefix.
func (e *Element) Name() string {
	return e.elem.FullTag()
}

// Text returns the character data immediately following the element's
// opening tag.
func (e *Element) Text() string {
	return e.elem.Text()
}

// Parent returns the parent wrapper, or nil for the root element. For
// wrappers obtained through queries the parent is recovered from the
// engine's own parent pointer.
func (e *Element) Parent() *Element {
	if e.parent != nil {
		return e.parent
	}
	p := e.elem.Parent()
	if p == nil || p.Tag == "" {
		return nil
	}
	return &Element{doc: e.doc, elem: p}
}

// Doc returns the owning document.
func (e *Element) Doc() *Document {
	return e.doc
}

// Unwrap exposes the underlying engine element.
func (e *Element) Unwrap() *etree.Element {
	return e.elem
}

func (e *Element) path() string {
	if e == nil {
		return "/"
	}
	if p := e.Parent(); p != nil {
		return p.path() + "/" + e.elem.FullTag()
	}
	return "/" + e.elem.FullTag()
}

func childPath(parent *Element, tag string) string {
	if parent == nil {
		return "/" + tag
	}
	return parent.path() + "/" + tag
}

func splitTag(tag string) (string, string) {
	if space, local, ok := strings.Cut(tag, ":"); ok {
		return space, local
	}
	return "", tag
}
