// Package hast models hypertext abstract syntax trees: the already parsed
// shape of HTML and SVG markup that gets turned into DOM nodes.
package hast

// Node types as they appear in the "type" field of a serialized tree.
const (
	TypeRoot    = "root"
	TypeElement = "element"
	TypeText    = "text"
	TypeComment = "comment"
	TypeDoctype = "doctype"
)

// Node is any node of a tree. The set of implementations is closed: Root,
// Element, Text, Comment, Doctype and Other.
type Node interface {
	Type() string
	hastNode()
}

// Parent is implemented by the nodes that can hold children.
type Parent interface {
	Node
	ChildNodes() []Node
}

// Root is a whole document or fragment.
type Root struct {
	Children []Node
}

// Element is a tag with properties and children.
type Element struct {
	TagName    string
	Properties Properties
	Children   []Node
}

// Text holds already decoded character data.
type Text struct {
	Value string
}

// Comment holds the data between <!-- and -->.
type Comment struct {
	Value string
}

// Doctype is a document type declaration. Empty fields are absent.
type Doctype struct {
	Name   string
	Public string
	System string
}

// Other is a node whose type is not one of the known kinds. It is rendered
// like an element, so producers of custom nodes still get output.
type Other struct {
	Kind       string
	TagName    string
	Properties Properties
	Children   []Node
}

func (*Root) Type() string    { return TypeRoot }
func (*Element) Type() string { return TypeElement }
func (*Text) Type() string    { return TypeText }
func (*Comment) Type() string { return TypeComment }
func (*Doctype) Type() string { return TypeDoctype }
func (o *Other) Type() string { return o.Kind }

func (*Root) hastNode()    {}
func (*Element) hastNode() {}
func (*Text) hastNode()    {}
func (*Comment) hastNode() {}
func (*Doctype) hastNode() {}
func (*Other) hastNode()   {}

func (r *Root) ChildNodes() []Node    { return r.Children }
func (e *Element) ChildNodes() []Node { return e.Children }
func (o *Other) ChildNodes() []Node   { return o.Children }

// Walk calls fn for node and every descendant in pre-order. Returning false
// from fn skips the children of that node.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	p, ok := node.(Parent)
	if !ok {
		return
	}
	for _, child := range p.ChildNodes() {
		Walk(child, fn)
	}
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	n := 0
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return n
}
