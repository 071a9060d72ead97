package xmlb

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identIndent struct{}
type identNamespace struct{}
type identOmitDeclaration struct{}
type identOmitEncoding struct{}
type identPermissive struct{}
type identPrefix struct{}

// CreateOption is accepted by New, AddElement, AddTextElement and
// SetAttribute.
type CreateOption interface {
	Option
	createOption()
}

type createOption struct{ Option }

func (*createOption) createOption() {}

// OutputOption is accepted by Serialize, WriteTo and SaveTo.
type OutputOption interface {
	Option
	outputOption()
}

type outputOption struct{ Option }

func (*outputOption) outputOption() {}

// FindOption is accepted by the single-result lookup operations.
type FindOption interface {
	Option
	findOption()
}

type findOption struct{ Option }

func (*findOption) findOption() {}

// ParseOption is accepted by the Parse family.
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// CreateFindOption works both when creating nodes and when looking
// them up.
type CreateFindOption interface {
	CreateOption
	FindOption
}

type createFindOption struct{ Option }

func (*createFindOption) createOption() {}
func (*createFindOption) findOption()   {}

// WithNamespace specifies a namespace URI. On creation the URI is
// declared on the new element (as the default namespace, or bound to
// the prefix given via WithPrefix). On lookup, only nodes whose
// resolved namespace URI matches are considered.
func WithNamespace(uri string) CreateFindOption {
	return &createFindOption{option.New(identNamespace{}, uri)}
}

// WithPrefix specifies the namespace prefix of a new element or
// attribute name.
func WithPrefix(prefix string) CreateOption {
	return &createOption{option.New(identPrefix{}, prefix)}
}

// WithIndent specifies the number of spaces used per indentation
// level. Pass NoIndent to disable pretty printing.
func WithIndent(n int) OutputOption {
	return &outputOption{option.New(identIndent{}, n)}
}

// WithOmitDeclaration suppresses the XML declaration.
func WithOmitDeclaration(v bool) OutputOption {
	return &outputOption{option.New(identOmitDeclaration{}, v)}
}

// WithOmitEncoding drops the encoding pseudo-attribute from the XML
// declaration.
func WithOmitEncoding(v bool) OutputOption {
	return &outputOption{option.New(identOmitEncoding{}, v)}
}

// WithEncoding specifies the output character encoding. The name is
// both written to the XML declaration and used to transcode the
// serialized bytes.
func WithEncoding(name string) OutputOption {
	return &outputOption{option.New(identEncoding{}, name)}
}

// WithPermissive tells the parser to tolerate common input errors the
// way the underlying engine allows.
func WithPermissive(v bool) ParseOption {
	return &parseOption{option.New(identPermissive{}, v)}
}
