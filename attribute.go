package xmlb

// Attrs opens an attribute scope on the element. All writes go
// straight to the underlying node; the scope only defers error
// reporting so consecutive Set calls can chain.
func (e *Element) Attrs() *Attrs {
	return &Attrs{elem: e}
}

// Set stringifies value and writes it as an attribute. On failure the
// first error is kept and all subsequent Sets become no-ops.
func (a *Attrs) Set(name string, value interface{}) *Attrs {
	if a.err != nil {
		return a
	}
	if _, err := a.elem.SetAttribute(name, value); err != nil {
		a.err = err
	}
	return a
}

// Done closes the scope, returning the owning element and the first
// error encountered, if any.
func (a *Attrs) Done() (*Element, error) {
	return a.elem, a.err
}

// Valid reports whether the view points at an actual attribute.
func (a Attr) Valid() bool {
	return a.elem != nil
}

// Name returns the attribute's local name.
func (a Attr) Name() string {
	return a.attr.Key
}

// Prefix returns the attribute's namespace prefix, if any.
func (a Attr) Prefix() string {
	return a.attr.Space
}

// Value returns the attribute value.
func (a Attr) Value() string {
	return a.attr.Value
}

// URI returns the namespace URI the attribute's prefix resolves to.
func (a Attr) URI() string {
	return a.attr.NamespaceURI()
}
