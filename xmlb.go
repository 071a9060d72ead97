// Package xmlb provides a fluent builder/traversal layer on top of
// the etree XML engine. It exists purely for convenience: trees are
// constructed and walked through chainable wrapper objects, while all
// of the actual XML work (storage, parsing, escaping, serialization,
// path evaluation) is delegated to github.com/beevik/etree and
// github.com/antchfx/xpath.
package xmlb

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/beevik/etree"
	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/xmlb/encoding"
)

const Version = "0.1.0"

// New creates a document whose root element has the given tag name.
// The tag must be a valid XML name, otherwise a BuildError is
// returned.
func New(tag string, options ...CreateOption) (*Document, error) {
	ed := etree.NewDocument()
	d := &Document{doc: ed}
	root, err := createElement(d, nil, &ed.Element, tag, options)
	if err != nil {
		return nil, err
	}
	d.root = root
	return d, nil
}

// Wrap adopts a document that was already produced by the engine.
func Wrap(doc *etree.Document) *Document {
	d := &Document{doc: doc}
	if root := doc.Root(); root != nil {
		d.root = &Element{doc: d, elem: root}
	}
	return d
}

// Parse parses the given []byte buffer and creates a Document object.
// Malformed input surfaces here as a ParseError; traversal of a
// successfully parsed document does not fail on its own.
func Parse(ctx context.Context, data []byte, options ...ParseOption) (*Document, error) {
	return parse(ctx, "<memory>", bytes.NewReader(data), options...)
}

// ParseReader reads an XML document from r and creates a Document
// object.
func ParseReader(ctx context.Context, r io.Reader, options ...ParseOption) (*Document, error) {
	return parse(ctx, "<memory>", r, options...)
}

// ParseFile reads an XML document from the named file.
func ParseFile(ctx context.Context, path string, options ...ParseOption) (doc *Document, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("xmlb.ParseFile %s", path).BindError(&err)
		defer g.End()
	}

	ed := newEngineDocument(options)
	if err := ed.ReadFromFile(path); err != nil {
		return nil, ParseError{Source: path, Err: err}
	}

	tlog := getTraceLogFromContext(ctx)
	tlog.Debug("parsed document", slog.String("source", path))

	return Wrap(ed), nil
}

func parse(ctx context.Context, source string, r io.Reader, options ...ParseOption) (doc *Document, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("xmlb.parse %s", source).BindError(&err)
		defer g.End()
	}

	ed := newEngineDocument(options)
	n, rerr := ed.ReadFrom(r)
	if rerr != nil {
		return nil, ParseError{Source: source, Err: rerr}
	}

	tlog := getTraceLogFromContext(ctx)
	tlog.Debug("parsed document", slog.String("source", source), slog.Int64("bytes", n))

	return Wrap(ed), nil
}

func newEngineDocument(options []ParseOption) *etree.Document {
	ed := etree.NewDocument()
	ed.ReadSettings.CharsetReader = charsetReader
	for _, o := range options {
		switch o.Ident().(type) {
		case identPermissive:
			ed.ReadSettings.Permissive = o.Value().(bool)
		}
	}
	return ed
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	e := encoding.Load(charset)
	if e == nil {
		return nil, ErrUnknownEncoding
	}
	return e.NewDecoder().Reader(input), nil
}
