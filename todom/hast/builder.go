package hast

import (
	"fmt"
	"strings"
)

// H builds an HTML element from a selector such as "a#top.nav.active",
// properties, and children. The tag defaults to div. Children may be nodes,
// strings (text nodes), or slices of either.
func H(selector string, props Properties, children ...any) *Element {
	return build(selector, "div", props, children)
}

// S is H for SVG: the tag defaults to g.
func S(selector string, props Properties, children ...any) *Element {
	return build(selector, "g", props, children)
}

func build(selector, defaultTag string, props Properties, children []any) *Element {
	el := parseSelector(selector, defaultTag)
	for _, prop := range props {
		if prop.Name == "className" {
			if prev, ok := el.Properties.Get("className"); ok {
				el.Properties = el.Properties.Set("className", List(append(prev.Items(), listItems(prop.Value)...)...))
				continue
			}
		}
		el.Properties = el.Properties.Set(prop.Name, prop.Value)
	}
	el.Children = appendChildren(el.Children, children)
	return el
}

func listItems(v Value) []Value {
	if v.IsList() {
		return v.Items()
	}
	return []Value{v}
}

func parseSelector(selector, defaultTag string) *Element {
	el := &Element{TagName: defaultTag}
	var classes []string
	rest := selector
	start := strings.IndexAny(rest, "#.")
	if start == -1 {
		if rest != "" {
			el.TagName = rest
		}
		return el
	}
	if start > 0 {
		el.TagName = rest[:start]
	}
	rest = rest[start:]
	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, "#.")
		if end == -1 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]
		if name == "" {
			continue
		}
		if marker == '#' {
			el.Properties = el.Properties.Set("id", String(name))
		} else {
			classes = append(classes, name)
		}
	}
	if len(classes) > 0 {
		el.Properties = el.Properties.Set("className", Strings(classes...))
	}
	return el
}

func appendChildren(dst []Node, children []any) []Node {
	for _, child := range children {
		switch c := child.(type) {
		case nil:
		case Node:
			dst = append(dst, c)
		case string:
			dst = append(dst, &Text{Value: c})
		case []Node:
			dst = append(dst, c...)
		case []string:
			for _, s := range c {
				dst = append(dst, &Text{Value: s})
			}
		case []any:
			dst = appendChildren(dst, c)
		default:
			panic(fmt.Sprintf("hast: unsupported child of type %T", child))
		}
	}
	return dst
}
