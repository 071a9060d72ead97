package xmlb

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName     = errors.New("invalid xml name")
	ErrNameRequired    = errors.New("name is required")
	ErrNameTooLong     = errors.New("name is too long")
	ErrNilElement      = errors.New("nil element")
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// BuildError is returned when constructing or serializing a tree
// fails. Path points at the element (or attribute) being worked on
// when the failure happened.
type BuildError struct {
	Path string
	Err  error
}

func (e BuildError) Error() string {
	return fmt.Sprintf("build failed at %s: %s", e.Path, e.Err)
}

func (e BuildError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the source document could not be parsed.
// Source names the input ("<memory>" for byte/reader input).
type ParseError struct {
	Source string
	Err    error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %s", e.Source, e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// QueryCompileError is returned by CompileQuery when the expression
// does not compile. It is raised eagerly, never at evaluation time.
type QueryCompileError struct {
	Expr string
	Err  error
}

func (e QueryCompileError) Error() string {
	return fmt.Sprintf("failed to compile query %q: %s", e.Expr, e.Err)
}

func (e QueryCompileError) Unwrap() error {
	return e.Err
}

// NotFoundError is produced by the callbacks created via
// MissingElement and MissingAttribute.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}
