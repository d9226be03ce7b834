package hast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilders(t *testing.T) {
	t.Parallel()

	el := H("a#top.nav.active", Props(Prop("href", "/"), Prop("className", "extra")), "home", []string{"a", "b"})
	assert.Equal(t, "a", el.TagName)
	assert.Equal(t, []string{"id", "className", "href"}, el.Properties.Names())
	id, _ := el.Properties.Get("id")
	assert.Equal(t, "top", id.String())
	class, _ := el.Properties.Get("className")
	assert.True(t, Strings("nav", "active", "extra").Equal(class), class.String())
	assert.Equal(t, []Node{&Text{"home"}, &Text{"a"}, &Text{"b"}}, el.Children)

	assert.Equal(t, "div", H("", nil).TagName)
	assert.Equal(t, "div", H(".x", nil).TagName)
	assert.Equal(t, "g", S("", nil).TagName)
	assert.Equal(t, "circle", S("circle", nil).TagName)

	nested := H("ul", nil, []any{H("li", nil), "x", nil})
	assert.Len(t, nested.Children, 2)
	assert.Panics(t, func() { H("p", nil, 42) })
}

func TestProperties(t *testing.T) {
	t.Parallel()
	var p Properties
	p = p.Set("b", String("1"))
	p = p.Set("a", String("2"))
	p = p.Set("b", String("3"))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"b", "a"}, p.Names())
	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v.String())
	_, ok = p.Get("c")
	assert.False(t, ok)
}

func TestWalk(t *testing.T) {
	t.Parallel()
	tree := &Root{Children: []Node{
		&Doctype{},
		H("html", nil, H("body", nil, "x", &Comment{Value: "c"})),
		&Other{Kind: "custom", Children: []Node{&Text{"y"}}},
	}}

	var types []string
	Walk(tree, func(n Node) bool {
		types = append(types, n.Type())
		return true
	})
	assert.Equal(t, []string{"root", "doctype", "element", "element", "text", "comment", "custom", "text"}, types)
	assert.Equal(t, 8, Count(tree))

	visited := 0
	Walk(tree, func(n Node) bool {
		visited++
		_, isElement := n.(*Element)
		return !isElement
	})
	assert.Equal(t, 5, visited)
}
