package xmlb

import "github.com/beevik/etree"

// Root returns the wrapper for the document's root element. It is nil
// for a wrapped document that has no root element.
func (d *Document) Root() *Element {
	return d.root
}

// Unwrap exposes the underlying engine document.
func (d *Document) Unwrap() *etree.Document {
	return d.doc
}

// AddComment adds a document-level comment. When a root element
// exists the comment is placed before it.
func (d *Document) AddComment(content string) (*Document, error) {
	c := d.doc.CreateComment(content)
	if d.root != nil {
		d.doc.RemoveChildAt(c.Index())
		d.doc.InsertChildAt(d.root.elem.Index(), c)
	}
	return d, nil
}
