// Package dom is a small document object model: the node tree that hast
// trees are turned into, the factory contract used to create nodes, and
// serializers used to read a tree back as markup.
package dom

import (
	"sort"
	"strings"
)

// NodeType is https://dom.spec.whatwg.org/#dom-node-nodetype
type NodeType uint16

const (
	ElementNode               NodeType = 1
	AttrNode                  NodeType = 2
	TextNode                  NodeType = 3
	CDATASectionNode          NodeType = 4
	ProcessingInstructionNode NodeType = 7
	CommentNode               NodeType = 8
	DocumentNode              NodeType = 9
	DocumentTypeNode          NodeType = 10
	DocumentFragmentNode      NodeType = 11
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case AttrNode:
		return "attr"
	case TextNode:
		return "text"
	case CDATASectionNode:
		return "cdata-section"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "doctype"
	case DocumentFragmentNode:
		return "document-fragment"
	}
	return "unknown"
}

// NodeList is https://dom.spec.whatwg.org/#nodelist
type NodeList []*Node

// Node is https://dom.spec.whatwg.org/#node
//
// Exactly one of the embedded kinds is set, matching NodeType. Fragments
// carry none.
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*CharacterData
	*DocumentType
	*Document
}

// CharacterData holds the data of text and comment nodes.
// https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data string
}

// DocumentType is https://dom.spec.whatwg.org/#documenttype
type DocumentType struct {
	Name     string
	PublicID string
	SystemID string
}

func newNode(t NodeType, name string, od *Node) *Node {
	return &Node{NodeType: t, NodeName: name, OwnerDocument: od}
}

// NewTextNode returns a text node owned by od.
func NewTextNode(od *Node, text string) *Node {
	n := newNode(TextNode, "#text", od)
	n.CharacterData = &CharacterData{Data: text}
	return n
}

// NewComment returns a comment node with its Data section filled.
func NewComment(od *Node, data string) *Node {
	n := newNode(CommentNode, "#comment", od)
	n.CharacterData = &CharacterData{Data: data}
	return n
}

// NewDocTypeNode returns a document type node owned by od.
func NewDocTypeNode(od *Node, name, pub, sys string) *Node {
	n := newNode(DocumentTypeNode, name, od)
	n.DocumentType = &DocumentType{Name: name, PublicID: pub, SystemID: sys}
	return n
}

// NewDocumentFragment returns an empty fragment owned by od.
func NewDocumentFragment(od *Node) *Node {
	return newNode(DocumentFragmentNode, "#document-fragment", od)
}

// nodeDocument is the document a node belongs to: itself for documents.
func (n *Node) nodeDocument() *Node {
	if n.NodeType == DocumentNode {
		return n
	}
	return n.OwnerDocument
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// TextContent is https://dom.spec.whatwg.org/#dom-node-textcontent
func (n *Node) TextContent() string {
	switch n.NodeType {
	case TextNode, CommentNode, ProcessingInstructionNode, CDATASectionNode:
		return n.CharacterData.Data
	case ElementNode, DocumentFragmentNode:
		var sb strings.Builder
		n.collectText(&sb)
		return sb.String()
	}
	return ""
}

func (n *Node) collectText(sb *strings.Builder) {
	for _, child := range n.ChildNodes {
		switch child.NodeType {
		case TextNode, CDATASectionNode:
			sb.WriteString(child.CharacterData.Data)
		case ElementNode:
			child.collectText(sb)
		}
	}
}

func (n *Node) isInclusiveAncestorOf(other *Node) bool {
	for p := other; p != nil; p = p.ParentNode {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) elementChild() *Node {
	for _, c := range n.ChildNodes {
		if c.NodeType == ElementNode {
			return c
		}
	}
	return nil
}

func (n *Node) doctypeChild() *Node {
	for _, c := range n.ChildNodes {
		if c.NodeType == DocumentTypeNode {
			return c
		}
	}
	return nil
}

// validatePreInsertion is the append subset of
// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
func (n *Node) validatePreInsertion(on *Node) error {
	switch n.NodeType {
	case DocumentNode, DocumentFragmentNode, ElementNode:
	default:
		return newError(HierarchyRequestError, "a %s node cannot have children", n.NodeType)
	}
	if on.isInclusiveAncestorOf(n) {
		return newError(HierarchyRequestError, "the new child is an ancestor of the parent")
	}
	switch on.NodeType {
	case DocumentFragmentNode, DocumentTypeNode, ElementNode, TextNode, CommentNode,
		ProcessingInstructionNode, CDATASectionNode:
	default:
		return newError(HierarchyRequestError, "a %s node cannot be inserted", on.NodeType)
	}
	if on.NodeType == TextNode && n.NodeType == DocumentNode {
		return newError(HierarchyRequestError, "a document cannot contain text")
	}
	if on.NodeType == DocumentTypeNode && n.NodeType != DocumentNode {
		return newError(HierarchyRequestError, "a doctype can only be a child of a document")
	}
	if n.NodeType != DocumentNode {
		return nil
	}

	switch on.NodeType {
	case DocumentFragmentNode:
		elements := 0
		for _, c := range on.ChildNodes {
			switch c.NodeType {
			case ElementNode:
				elements++
			case TextNode:
				return newError(HierarchyRequestError, "a document cannot contain text")
			}
		}
		if elements > 1 || elements == 1 && n.elementChild() != nil {
			return newError(HierarchyRequestError, "a document can only have one document element")
		}
	case ElementNode:
		if n.elementChild() != nil {
			return newError(HierarchyRequestError, "a document can only have one document element")
		}
	case DocumentTypeNode:
		if n.doctypeChild() != nil {
			return newError(HierarchyRequestError, "a document can only have one doctype")
		}
		if n.elementChild() != nil {
			return newError(HierarchyRequestError, "a doctype must come before the document element")
		}
	}
	return nil
}

// AppendChild is https://dom.spec.whatwg.org/#dom-node-appendchild
// Appending a fragment moves its children; appending an attached node moves
// it from its old parent.
func (n *Node) AppendChild(on *Node) (*Node, error) {
	if err := n.validatePreInsertion(on); err != nil {
		return nil, err
	}
	if on.NodeType == DocumentFragmentNode {
		for _, c := range append(NodeList(nil), on.ChildNodes...) {
			on.removeChild(c)
			n.appendChild(c)
		}
		return on, nil
	}
	if on.ParentNode != nil {
		on.ParentNode.removeChild(on)
	}
	n.appendChild(on)
	return on, nil
}

func (n *Node) appendChild(on *Node) {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	on.adopt(n.nodeDocument())
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.ChildNodes {
		if c != child {
			continue
		}
		n.ChildNodes = append(n.ChildNodes[:i:i], n.ChildNodes[i+1:]...)
		if child.PreviousSibling != nil {
			child.PreviousSibling.NextSibling = child.NextSibling
		} else {
			n.FirstChild = child.NextSibling
		}
		if child.NextSibling != nil {
			child.NextSibling.PreviousSibling = child.PreviousSibling
		} else {
			n.LastChild = child.PreviousSibling
		}
		child.ParentNode, child.PreviousSibling, child.NextSibling = nil, nil, nil
		return
	}
}

// adopt moves a subtree into document od.
func (n *Node) adopt(od *Node) {
	if od == nil || n.NodeType == DocumentNode || n.OwnerDocument == od {
		return
	}
	n.OwnerDocument = od
	if n.Element != nil {
		n.NodeName = n.htmlUppercasedName()
	}
	for _, c := range n.ChildNodes {
		c.adopt(od)
	}
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.Element.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += node.Element.LocalName
		if node.Attributes.Length() != 0 {
			e += ">"
			attrs := append([]*Attr(nil), node.Attributes.Attrs...)
			sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
			spaces := "| "
			for i := 1; i < ident; i++ {
				spaces += "  "
			}
			for _, attr := range attrs {
				e += "\n" + spaces + attr.Name + "=\"" + attr.Value + "\""
			}
		} else {
			e += ">"
		}
		return e
	case TextNode:
		return "\"" + node.CharacterData.Data + "\""
	case CommentNode:
		return "<!-- " + node.CharacterData.Data + " -->"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + node.DocumentType.Name
		if node.DocumentType.PublicID == "" && node.DocumentType.SystemID == "" {
			return d + ">"
		}
		return d + " \"" + node.DocumentType.PublicID + "\" \"" + node.DocumentType.SystemID + "\">"
	case DocumentNode:
		return "#document"
	case DocumentFragmentNode:
		return "#document-fragment"
	}
	return ""
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode && node.NodeType != DocumentFragmentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

// String dumps the tree in the html5lib test format, one node per line.
func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}
