package xmlb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lestrrat-go/xmlb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, src string) *xmlb.Document {
	t.Helper()
	doc, err := xmlb.Parse(context.Background(), []byte(src))
	require.NoError(t, err, "Parse succeeds")
	return doc
}

func TestFindElement(t *testing.T) {
	doc := parseString(t, `<root><a/><b flag="yes"/><a/></root>`)
	root := doc.Root()

	b, err := root.FindElement("b", nil)
	if !assert.NoError(t, err, `FindElement("b") succeeds`) {
		return
	}
	if !assert.Equal(t, "b", b.Tag(), "the wrapper points at the match") {
		return
	}
	if !assert.Equal(t, "root", b.Parent().Tag(), "parent back-reference is populated") {
		return
	}

	_, err = root.FindElement("missing", nil)
	var nf xmlb.NotFoundError
	if !assert.ErrorAs(t, err, &nf, "default missing arm produces NotFoundError") {
		return
	}
}

func TestFindElementMissingArm(t *testing.T) {
	doc := parseString(t, `<root><a/></root>`)
	root := doc.Root()

	invoked := 0
	fallback, _ := root.FindElement("a", nil)
	got, err := root.FindElement("missing", func() (*xmlb.Element, error) {
		invoked++
		return fallback, nil
	})
	require.NoError(t, err, "caller-supplied arm may produce a substitute")
	require.Equal(t, 1, invoked, "missing arm invoked exactly once")
	require.Equal(t, "a", got.Tag(), "substitute is handed back unchanged")

	_, err = root.FindElement("missing", xmlb.MissingElement("must have missing"))
	var nf xmlb.NotFoundError
	require.ErrorAs(t, err, &nf, "MissingElement arm raises NotFoundError")
	require.Equal(t, "must have missing", nf.Message)
}

func TestFindElements(t *testing.T) {
	doc := parseString(t, `<root><a i="1"/><b/><a i="2"/></root>`)
	root := doc.Root()

	var seen []string
	seq := root.FindElements("a")
	for el := range seq {
		a, err := el.FindAttribute("i", nil)
		require.NoError(t, err, "FindAttribute succeeds")
		seen = append(seen, a.Value())
	}
	require.Equal(t, []string{"1", "2"}, seen, "two matches, in document order")

	count := 0
	for range seq {
		count++
	}
	require.Equal(t, 0, count, "the sequence is single use")
}

func TestFindElementsUnfiltered(t *testing.T) {
	doc := parseString(t, `<root><a/><b/><c/></root>`)

	var tags []string
	for el := range doc.Root().FindElements() {
		tags = append(tags, el.Tag())
	}
	require.Equal(t, []string{"a", "b", "c"}, tags, "empty filter matches everything")
}

func TestFindElementsFunc(t *testing.T) {
	doc := parseString(t, `<root><item n="1"/><item n="2"/><item n="3"/></root>`)

	var picked []string
	for el := range doc.Root().FindElementsFunc(func(e *xmlb.Element) bool {
		a, err := e.FindAttribute("n", nil)
		return err == nil && a.Value() != "2"
	}) {
		a, _ := el.FindAttribute("n", nil)
		picked = append(picked, a.Value())
	}
	require.Equal(t, []string{"1", "3"}, picked)
}

func TestFindElementNamespace(t *testing.T) {
	doc := parseString(t, `<root xmlns:x="urn:one" xmlns:y="urn:two"><x:item/><y:item/></root>`)
	root := doc.Root()

	el, err := root.FindElement("item", nil, xmlb.WithNamespace("urn:two"))
	require.NoError(t, err, "namespace lookup succeeds")
	require.Equal(t, "y", el.Unwrap().Space, "the urn:two item matched")

	el, err = root.FindElement("x:item", nil)
	require.NoError(t, err, "prefixed lookup succeeds")
	require.Equal(t, "x", el.Unwrap().Space)
}

func TestFindAttribute(t *testing.T) {
	doc := parseString(t, `<root a="1" b="2"/>`)
	root := doc.Root()

	attr, err := root.FindAttribute("b", nil)
	require.NoError(t, err, "FindAttribute succeeds")
	require.True(t, attr.Valid())
	require.Equal(t, "2", attr.Value())

	_, err = root.FindAttribute("nope", xmlb.MissingAttribute("nope is required"))
	var nf xmlb.NotFoundError
	require.ErrorAs(t, err, &nf, "missing arm raises NotFoundError")
	require.Equal(t, "nope is required", nf.Message)
}

func TestFindAttributes(t *testing.T) {
	doc := parseString(t, `<root a="1" b="2" c="3"/>`)

	var names []string
	for attr := range doc.Root().FindAttributes(func(a xmlb.Attr) bool {
		return a.Name() != "b"
	}) {
		names = append(names, attr.Name())
	}
	require.Equal(t, []string{"a", "c"}, names)
}

func TestWalk(t *testing.T) {
	doc := parseString(t, `<root><a><b/></a><c/></root>`)

	var visited []string
	err := doc.Root().Walk(func(e *xmlb.Element) error {
		visited = append(visited, e.Tag())
		return nil
	})
	require.NoError(t, err, "Walk succeeds")
	require.Equal(t, []string{"root", "a", "b", "c"}, visited, "depth first, document order")

	sentinel := errors.New("stop here")
	visited = nil
	err = doc.Root().Walk(func(e *xmlb.Element) error {
		visited = append(visited, e.Tag())
		if e.Tag() == "a" {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel, "walk propagates the callback's error")
	require.Equal(t, []string{"root", "a"}, visited, "walk stops at the error")
}
