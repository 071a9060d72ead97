package xmlb_test

import (
	"testing"

	"github.com/lestrrat-go/xmlb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookstoreSrc = `<bookstore>` +
	`<book id="1"><title>Great Expectations</title><author>Charles Dickens</author></book>` +
	`<book id="2"><title>Ulysses</title><author>James Joyce</author></book>` +
	`</bookstore>`

func TestCompileQueryError(t *testing.T) {
	_, err := xmlb.CompileQuery(`//book[`)
	var qe xmlb.QueryCompileError
	if !assert.ErrorAs(t, err, &qe, "compilation fails eagerly") {
		return
	}
	if !assert.Equal(t, `//book[`, qe.Expr, "the offending expression is reported") {
		return
	}
	if !assert.Error(t, qe.Unwrap(), "the engine's failure is preserved") {
		return
	}
}

func TestMustCompileQuery(t *testing.T) {
	require.NotNil(t, xmlb.MustCompileQuery(`//book`), "valid expression compiles")
	require.Panics(t, func() {
		xmlb.MustCompileQuery(`//book[`)
	}, "invalid expression panics")
}

func TestEvaluateAll(t *testing.T) {
	doc := parseString(t, bookstoreSrc)
	q := xmlb.MustCompileQuery(`//book`)

	var ids []string
	for el := range q.EvaluateAll(doc.Root()) {
		a, err := el.FindAttribute("id", nil)
		require.NoError(t, err, "id attribute present")
		ids = append(ids, a.Value())
	}
	require.Equal(t, []string{"1", "2"}, ids, "all matches in document order")
}

func TestEvaluateFirst(t *testing.T) {
	doc := parseString(t, bookstoreSrc)

	q := xmlb.MustCompileQuery(`//book[author='James Joyce']/title`)
	title, err := q.EvaluateFirst(doc.Root(), nil)
	require.NoError(t, err, "EvaluateFirst succeeds")
	require.Equal(t, "Ulysses", title.Text())
	require.Equal(t, "book", title.Parent().Tag(), "parent recovered from the engine")

	q = xmlb.MustCompileQuery(`//magazine`)
	_, err = q.EvaluateFirst(doc.Root(), nil)
	var nf xmlb.NotFoundError
	require.ErrorAs(t, err, &nf, "no match goes through the missing arm")

	got, err := q.EvaluateFirst(doc.Root(), func() (*xmlb.Element, error) {
		return doc.Root(), nil
	})
	require.NoError(t, err, "caller-supplied arm may substitute")
	require.Equal(t, "bookstore", got.Tag())
}

func TestQueryReuse(t *testing.T) {
	q := xmlb.MustCompileQuery(`book/title`)
	require.Equal(t, `book/title`, q.String())

	for range 2 {
		doc := parseString(t, bookstoreSrc)
		count := 0
		for range q.EvaluateAll(doc.Root()) {
			count++
		}
		require.Equal(t, 2, count, "compiled query is reusable across documents")
	}
}

func TestQueryAttributePredicate(t *testing.T) {
	doc := parseString(t, bookstoreSrc)

	q := xmlb.MustCompileQuery(`//book[@id='2']`)
	el, err := q.EvaluateFirst(doc.Root(), nil)
	require.NoError(t, err, "attribute predicate matches")

	title, err := el.FindElement("title", nil)
	require.NoError(t, err, "FindElement on query result")
	require.Equal(t, "Ulysses", title.Text())
}

func TestQueryOnBuiltDocument(t *testing.T) {
	doc, err := xmlb.New("inventory")
	require.NoError(t, err, "New succeeds")

	for _, name := range []string{"bolt", "nut", "bolt"} {
		item, err := doc.Root().AddElement("item")
		require.NoError(t, err, "AddElement succeeds")
		_, err = item.SetAttribute("name", name)
		require.NoError(t, err, "SetAttribute succeeds")
	}

	q := xmlb.MustCompileQuery(`//item[@name='bolt']`)
	count := 0
	for range q.EvaluateAll(doc.Root()) {
		count++
	}
	require.Equal(t, 2, count, "queries work on built trees too")
}
