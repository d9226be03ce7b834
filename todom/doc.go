// Package todom turns hast trees into DOM trees.
//
// Transform walks a hast tree and creates one DOM node per hast node through
// a dom.Factory, by default a fresh HTML document:
//
//	tree := hast.H("div#main", nil, hast.H("p", nil, "hello"))
//	out, err := todom.Transform(tree)
//	if err != nil {
//		return err
//	}
//	fmt.Println(dom.SerializeHTML(out)) // <div id="main"><p>hello</p></div>
//
// Elements are created in the namespace of their nearest namespaced
// ancestor; an svg element below HTML content switches its subtree to SVG.
// Properties are mapped to attributes with the HTML or SVG schema of the
// element, see package schema.
//
// Errors returned by the factory, such as an invalid tag name, are returned
// as they are.
package todom
