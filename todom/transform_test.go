package todom

import (
	"strings"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntax-tree/hast-util-to-dom/todom/dom"
	"github.com/syntax-tree/hast-util-to-dom/todom/hast"
)

var (
	h     = hast.H
	s     = hast.S
	props = hast.Props
	prop  = hast.Prop
)

func text(value string) *hast.Text { return &hast.Text{Value: value} }

func root(children ...hast.Node) *hast.Root { return &hast.Root{Children: children} }

type transformTestcase struct {
	name     string
	in       hast.Node
	opts     []Option
	expected string
}

var transformTests = []transformTestcase{
	{"empty root", root(), nil, ""},
	{"root with a document element", root(h("html", nil)), nil, "<html></html>"},
	{
		"root with a doctype",
		root(&hast.Doctype{Name: "html"}, h("html", nil, h("head", nil), h("body", nil))),
		nil,
		"<!DOCTYPE html><html><head></head><body></body></html>",
	},
	{"text", text("hello world"), nil, "hello world"},
	{"text is escaped", text("a < b & c"), nil, "a &lt; b &amp; c"},
	{"element", h("div", nil), nil, "<div></div>"},
	{"unknown node in HTML", &hast.Other{Kind: "something-else"}, nil, "<div></div>"},
	{"unknown node in SVG", &hast.Other{Kind: "something-else"}, []Option{WithNamespace(dom.Svgns)}, "<g/>"},
	{
		"unknown node with children",
		&hast.Other{Kind: "something-else", Children: []hast.Node{text("value")}},
		nil,
		"<div>value</div>",
	},
	{"unknown node with a tag name", &hast.Other{Kind: "custom", TagName: "span"}, nil, "<span></span>"},
	{
		"svg switches missing tag names to g",
		h("div", nil, h("svg", nil, &hast.Other{Kind: "x"}, &hast.Element{})),
		nil,
		"<div><svg><g/><g/></svg></div>",
	},
	{"text children", h("span", nil, []string{"hello", "world"}), nil, "<span>helloworld</span>"},
	{"id and class", h("#foo.bar", nil, "text"), nil, `<div id="foo" class="bar">text</div>`},
	{
		"SVG elements",
		s("#foo.bar", nil, s("circle", nil)),
		[]Option{WithNamespace(dom.Svgns)},
		`<g id="foo" class="bar"><circle/></g>`,
	},
	{
		"attributes",
		h("input", props(prop("disabled", true), prop("value", "foo"))),
		nil,
		`<input disabled="" value="foo" />`,
	},
	{
		"property that must be set on the object",
		h("input", props(prop("type", "checkbox"), prop("checked", true))),
		nil,
		`<input type="checkbox" checked="" />`,
	},
	{"false boolean", h("div", props(prop("allowFullScreen", false))), nil, "<div></div>"},
	{"space-separated", h("div", props(prop("class", []string{"foo", "bar"}))), nil, `<div class="foo bar"></div>`},
	{
		"comma-separated",
		h("input", props(prop("type", "file"), prop("accept", []string{"image/*", ".doc"}))),
		nil,
		`<input type="file" accept="image/*, .doc" />`,
	},
	{"doctype", &hast.Doctype{}, nil, "<!DOCTYPE html>"},
	{
		"doctype with identifiers",
		&hast.Doctype{Name: "html", Public: "-//W3C//DTD HTML 4.01//EN", System: "http://www.w3.org/TR/html4/strict.dtd"},
		nil,
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
	},
	{"comment", &hast.Comment{Value: "after"}, nil, "<!--after-->"},
	{
		"nested nodes",
		h(".alpha", nil,
			"bravo ",
			h("b", nil, "charlie"),
			" delta ",
			h("a.echo", props(prop("download", true)), "foxtrot"),
		),
		nil,
		`<div class="alpha">bravo <b>charlie</b> delta <a class="echo" download="">foxtrot</a></div>`,
	},
	{
		"wraps loose content in html",
		root(h("title", nil, "Hi"), h("h2", nil, "Hello world!")),
		nil,
		"<html><title>Hi</title><h2>Hello world!</h2></html>",
	},
	{
		"fragment",
		root(h("title", nil, "Hi"), h("h2", nil, "Hello world!")),
		[]Option{WithFragment(true)},
		"<title>Hi</title><h2>Hello world!</h2>",
	},
	{
		"empty root is a document in fragment mode",
		root(),
		[]Option{WithFragment(true)},
		"",
	},
	{
		"given namespace",
		root(h("html", nil)),
		[]Option{WithNamespace("http://example.com")},
		`<html xmlns="http://example.com"/>`,
	},
	{
		"namespace from xmlns",
		root(h("html", props(prop("xmlns", "http://example.com")))),
		nil,
		`<html xmlns="http://example.com"/>`,
	},
	{"booleanish true", h("div", props(prop("ariaChecked", true))), nil, `<div aria-checked="true"></div>`},
	{"booleanish false", h("div", props(prop("ariaChecked", false))), nil, `<div aria-checked="false"></div>`},
	{"booleanish value", h("div", props(prop("ariaChecked", "mixed"))), nil, `<div aria-checked="mixed"></div>`},
	{"data false", h("div", props(prop("dataTest", false))), nil, "<div></div>"},
	{"data NaN", h("div", props(prop("dataTest", hast.NaN()))), nil, "<div></div>"},
	{"data null", h("div", props(prop("dataTest", nil))), nil, "<div></div>"},
	{"data zero", h("div", props(prop("dataTest", 0))), nil, `<div data-test="0"></div>`},
	{"data true", h("div", props(prop("dataTest", true))), nil, `<div data-test=""></div>`},
	{"data empty string", h("div", props(prop("dataTest", ""))), nil, `<div data-test=""></div>`},
	{"data string", h("div", props(prop("dataTest", "data-test"))), nil, `<div data-test="data-test"></div>`},
	{"data digits", h("div", props(prop("data123", "dataTest"))), nil, `<div data-123="dataTest"></div>`},
	{"data number", h("div", props(prop("dataCount", 1.5))), nil, `<div data-count="1.5"></div>`},
	{
		"svg inside html",
		h("div", nil, h("svg", props(prop("viewBox", "0 0 10 10")), s("circle", props(prop("strokeWidth", 2))))),
		nil,
		`<div><svg viewBox="0 0 10 10"><circle stroke-width="2"/></svg></div>`,
	},
	{
		"html properties in svg use the svg schema",
		s("svg", props(prop("className", []string{"a", "b"}), prop("tabIndex", -1))),
		nil,
		`<svg class="a b" tabindex="-1"/>`,
	},
	{"overloaded boolean with a string", h("a", props(prop("download", "file.txt"))), nil, `<a download="file.txt"></a>`},
	{"overloaded boolean false", h("a", props(prop("download", false))), nil, "<a></a>"},
	{"unknown property", h("div", props(prop("fooBar", "baz"))), nil, `<div foobar="baz"></div>`},
	{"attribute values are escaped", h("div", props(prop("title", `a "b" <c>`))), nil, `<div title="a &quot;b&quot; &lt;c&gt;"></div>`},
}

func TestTransform(t *testing.T) {
	for _, tt := range transformTests {
		runTransformTest(tt, t)
	}
}

func runTransformTest(tt transformTestcase, t *testing.T) {
	t.Run(tt.name, func(t *testing.T) {
		t.Parallel()
		out, err := Transform(tt.in, tt.opts...)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, dom.SerializeHTML(out))
	})
}

func TestTransformNodeTypes(t *testing.T) {
	t.Parallel()

	out, err := Transform(root())
	require.NoError(t, err)
	assert.Equal(t, dom.DocumentNode, out.NodeType)

	out, err = Transform(root(h("p", nil)), WithFragment(true))
	require.NoError(t, err)
	assert.Equal(t, dom.DocumentFragmentNode, out.NodeType)

	out, err = Transform(root(h("p", nil)))
	require.NoError(t, err)
	assert.Equal(t, dom.ElementNode, out.NodeType)
	assert.Equal(t, "html", out.LocalName)

	out, err = Transform(&hast.Doctype{})
	require.NoError(t, err)
	assert.Equal(t, dom.DocumentTypeNode, out.NodeType)

	out, err = Transform(&hast.Comment{Value: "x"})
	require.NoError(t, err)
	assert.Equal(t, dom.CommentNode, out.NodeType)
}

func TestTransformNamespaces(t *testing.T) {
	t.Parallel()

	out, err := Transform(h("div", nil, h("svg", nil, s("circle", nil)), h("p", nil)))
	require.NoError(t, err)
	svg := out.FirstChild
	assert.Equal(t, dom.Htmlns, out.NamespaceURI)
	assert.Equal(t, dom.Svgns, svg.NamespaceURI)
	assert.Equal(t, dom.Svgns, svg.FirstChild.NamespaceURI)
	assert.Equal(t, dom.Htmlns, out.LastChild.NamespaceURI)
	assert.Equal(t,
		`<div xmlns="http://www.w3.org/1999/xhtml"><svg xmlns="http://www.w3.org/2000/svg"><circle/></svg><p></p></div>`,
		dom.SerializeXML(out))

	// A document keeps the namespace of its html element for all content.
	out, err = Transform(root(h("html", nil, h("body", nil, h("svg", nil, h("foreignObject", nil, h("p", nil)))))))
	require.NoError(t, err)
	p := out.DocumentElement().FirstChild.FirstChild.FirstChild.FirstChild
	assert.Equal(t, dom.Svgns, p.NamespaceURI)
	// The document from CreateDocument is an XML document, so names keep
	// their case once the elements move into it.
	assert.Equal(t, "html", out.DocumentElement().TagName())
	assert.Equal(t, "body", out.DocumentElement().FirstChild.TagName())

	out, err = Transform(h("div", nil))
	require.NoError(t, err)
	assert.Equal(t, "DIV", out.TagName())

	// An explicit namespace wins over xmlns.
	out, err = Transform(root(h("html", props(prop("xmlns", "http://a.example")))), WithNamespace("http://b.example"))
	require.NoError(t, err)
	assert.Equal(t, "http://b.example", out.DocumentElement().NamespaceURI)
}

func TestTransformProperties(t *testing.T) {
	t.Parallel()

	out, err := Transform(h("input", props(prop("type", "checkbox"), prop("checked", true))))
	require.NoError(t, err)
	checked, ok := out.Property("checked")
	require.True(t, ok)
	assert.Equal(t, true, checked)

	out, err = Transform(h("select", props(prop("multiple", false))))
	require.NoError(t, err)
	multiple, ok := out.Property("multiple")
	require.True(t, ok)
	assert.Equal(t, false, multiple)
	assert.False(t, out.HasAttribute("multiple"))

	out, err = Transform(h("label", props(prop("htmlFor", "name"), prop("acceptCharset", []string{"a", "b"}))))
	require.NoError(t, err)
	assert.Equal(t, []string{"for", "accept-charset"}, out.AttributeNames())
	v, _ := out.GetAttribute("accept-charset")
	assert.Equal(t, "a b", v)
}

// renamingDocument renames h1 elements to h2 and upper-cases text.
type renamingDocument struct {
	dom.Factory
}

func (d renamingDocument) CreateElementNS(namespace, qualifiedName string) (*dom.Node, error) {
	if qualifiedName == "h1" {
		qualifiedName = "h2"
	}
	return d.Factory.CreateElementNS(namespace, qualifiedName)
}

func (d renamingDocument) CreateTextNode(data string) *dom.Node {
	return d.Factory.CreateTextNode(strings.ToUpper(data))
}

func TestTransformWithDocument(t *testing.T) {
	t.Parallel()
	doc := renamingDocument{dom.NewHTMLDocument()}
	out, err := Transform(
		root(h("html", nil, h("title", nil, "foo"), h("h1", nil, "bar"))),
		WithDocument(doc),
	)
	require.NoError(t, err)
	assert.Equal(t, "<html><title>FOO</title><h2>BAR</h2></html>", dom.SerializeHTML(out))
}

type afterTransformCall struct {
	node       hast.Node
	serialized string
}

func TestAfterTransform(t *testing.T) {
	t.Parallel()
	title := h("title", nil, "Hi")
	tree := h("html", nil, title)

	var calls []afterTransformCall
	_, err := Transform(tree, WithAfterTransform(func(node hast.Node, transformed *dom.Node) {
		calls = append(calls, afterTransformCall{node, dom.SerializeHTML(transformed)})
	}))
	require.NoError(t, err)

	assert.Equal(t, []afterTransformCall{
		{title.Children[0], "Hi"},
		{title, "<title>Hi</title>"},
		{tree, "<html><title>Hi</title></html>"},
	}, calls)
}

func TestAfterTransformPostOrder(t *testing.T) {
	t.Parallel()
	tree := root(
		&hast.Doctype{},
		h("html", nil,
			h("head", nil, h("title", nil, "t")),
			h("body", nil,
				&hast.Comment{Value: "c"},
				h("p", nil, "a", h("b", nil, "b"), "c"),
				h("svg", nil, s("circle", nil)),
			),
		),
	)

	seen := map[hast.Node]bool{}
	calls := 0
	_, err := Transform(tree, WithAfterTransform(func(node hast.Node, transformed *dom.Node) {
		calls++
		assert.NotNil(t, transformed)
		if p, ok := node.(hast.Parent); ok {
			for _, child := range p.ChildNodes() {
				assert.True(t, seen[child], "child of %s seen before its parent", node.Type())
			}
		}
		assert.False(t, seen[node], "node seen twice")
		seen[node] = true
	}))
	require.NoError(t, err)
	assert.Equal(t, hast.Count(tree), calls)
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	tree := root(h("section.a.b", props(prop("hidden", true), prop("dataX", 0)), s("svg", nil, "x")))
	before := spew.Sdump(tree)

	first, err := Transform(tree)
	require.NoError(t, err)
	second, err := Transform(tree)
	require.NoError(t, err)

	assert.Equal(t, before, spew.Sdump(tree))
	assert.Equal(t, dom.SerializeXML(first), dom.SerializeXML(second))
}

func TestTransformConcurrent(t *testing.T) {
	t.Parallel()
	tree := root(h("ul", nil, h("li", nil, "one"), h("li", nil, "two")))
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := Transform(tree)
			if assert.NoError(t, err) {
				results[i] = dom.SerializeHTML(out)
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, "<html><ul><li>one</li><li>two</li></ul></html>", r)
	}
}

var errBoom = errors.New("boom")

type failingDocument struct {
	dom.Factory
}

func (failingDocument) CreateElement(string) (*dom.Node, error) {
	return nil, errBoom
}

func TestTransformErrors(t *testing.T) {
	t.Parallel()

	_, err := Transform(h("in valid", nil))
	require.Error(t, err)
	assert.True(t, dom.IsDOMError(err, dom.InvalidCharacterError), "%+v", err)

	_, err = Transform(&hast.Element{TagName: "xml:lang"}, WithNamespace(dom.Svgns))
	assert.True(t, dom.IsDOMError(err, dom.NamespaceError), "%+v", err)

	_, err = Transform(h("div", props(prop("foo bar", "x"))))
	assert.True(t, dom.IsDOMError(err, dom.InvalidCharacterError), "%+v", err)

	_, err = Transform(root(h("html", nil), text("\n")))
	assert.True(t, dom.IsDOMError(err, dom.HierarchyRequestError), "%+v", err)

	_, err = Transform(root(h("html", nil), h("html", nil)))
	assert.True(t, dom.IsDOMError(err, dom.HierarchyRequestError), "%+v", err)

	_, err = Transform(h("div", nil, h("p", nil)), WithDocument(failingDocument{dom.NewHTMLDocument()}))
	assert.Same(t, errBoom, err)

	_, err = Transform(nil)
	assert.Equal(t, ErrNilNode, errors.Cause(err))

	_, err = Transform(h("div", nil, []hast.Node{nil}))
	assert.Equal(t, ErrNilNode, errors.Cause(err))

	_, err = Transform(root((*hast.Element)(nil)))
	assert.Equal(t, ErrNilNode, errors.Cause(err))

	_, err = Transform((*hast.Other)(nil))
	assert.Equal(t, ErrNilNode, errors.Cause(err))
}

func TestTransformLogging(t *testing.T) {
	t.Parallel()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := Transform(root(&hast.Other{Kind: "custom"}), WithLogger(logger), WithFragment(true))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "transforming tree", entries[0].Message)
	assert.Equal(t, logrus.Fields{"type": "root", "fragment": true, "namespace": ""}, entries[0].Data)
	assert.Equal(t, "rendering unknown node as element", entries[1].Message)
	assert.Equal(t, "custom", entries[1].Data["kind"])

	hook.Reset()
	_, err = Transform(h("bad name", nil), WithLogger(logger))
	require.Error(t, err)
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "creating element failed", last.Message)
	assert.Equal(t, "bad name", last.Data["tagName"])
}
