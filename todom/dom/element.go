package dom

import (
	"sort"
	"strings"
)

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	NamespaceURI Namespace
	Prefix       string
	LocalName    string
	Name         string
	Value        string
	OwnerElement *Node
}

// NamedNodeMap is https://dom.spec.whatwg.org/#namednodemap
// Attributes keep the order they were first set in.
type NamedNodeMap struct {
	Attrs             []*Attr
	AssociatedElement *Node
}

func (m *NamedNodeMap) Length() int {
	if m == nil {
		return 0
	}
	return len(m.Attrs)
}

func (m *NamedNodeMap) index(qn string) int {
	for i, a := range m.Attrs {
		if a.Name == qn {
			return i
		}
	}
	return -1
}

// GetNamedItem returns the attribute whose qualified name is qn, or nil.
func (m *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if m == nil {
		return nil
	}
	if i := m.index(m.AssociatedElement.attributeName(qn)); i >= 0 {
		return m.Attrs[i]
	}
	return nil
}

// SetNamedItem adds attr, replacing any attribute with the same qualified
// name in place. The replaced attribute is returned.
func (m *NamedNodeMap) SetNamedItem(attr *Attr) *Attr {
	attr.OwnerElement = m.AssociatedElement
	if i := m.index(attr.Name); i >= 0 {
		old := m.Attrs[i]
		m.Attrs[i] = attr
		old.OwnerElement = nil
		return old
	}
	m.Attrs = append(m.Attrs, attr)
	return nil
}

// RemoveNamedItem removes the attribute named qn and returns it.
func (m *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	i := m.index(m.AssociatedElement.attributeName(qn))
	if i < 0 {
		return nil
	}
	old := m.Attrs[i]
	m.Attrs = append(m.Attrs[:i:i], m.Attrs[i+1:]...)
	old.OwnerElement = nil
	return old
}

// Element is https://dom.spec.whatwg.org/#element
type Element struct {
	NamespaceURI Namespace
	Prefix       string
	LocalName    string
	Attributes   *NamedNodeMap

	// Properties holds IDL attributes that do not reflect to content
	// attributes, such as the checkedness of an input.
	Properties map[string]any
}

// NewElement returns an element node owned by od. The qualified name is
// prefix:localName when prefix is set.
func NewElement(od *Node, ns Namespace, prefix, localName string) *Node {
	qn := localName
	if prefix != "" {
		qn = prefix + ":" + localName
	}
	n := newNode(ElementNode, qn, od)
	n.Element = &Element{
		NamespaceURI: ns,
		Prefix:       prefix,
		LocalName:    localName,
		Properties:   map[string]any{},
	}
	n.Element.Attributes = &NamedNodeMap{AssociatedElement: n}
	n.NodeName = n.htmlUppercasedName()
	return n
}

// htmlUppercasedName is the qualified name, upper-cased for HTML elements
// whose node document is an HTML document.
func (n *Node) htmlUppercasedName() string {
	qn := n.Element.LocalName
	if n.Element.Prefix != "" {
		qn = n.Element.Prefix + ":" + qn
	}
	od := n.OwnerDocument
	if n.Element.NamespaceURI == Htmlns && od != nil && od.Document != nil && od.Document.IsHTML() {
		return strings.ToUpper(qn)
	}
	return qn
}

// TagName is https://dom.spec.whatwg.org/#dom-element-tagname
func (n *Node) TagName() string {
	if n.Element == nil {
		return ""
	}
	return n.NodeName
}

// attributeName lowercases qualified names on HTML elements in HTML
// documents, see https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (n *Node) attributeName(qn string) string {
	if n.Element.NamespaceURI == Htmlns && n.OwnerDocument != nil &&
		n.OwnerDocument.Document != nil && n.OwnerDocument.Document.IsHTML() {
		return strings.ToLower(qn)
	}
	return qn
}

func (n *Node) requireElement(op string) error {
	if n.NodeType != ElementNode {
		return newError(InvalidNodeTypeError, "%s called on a %s node", op, n.NodeType)
	}
	return nil
}

// SetAttribute is https://dom.spec.whatwg.org/#dom-element-setattribute
func (n *Node) SetAttribute(qn, value string) error {
	if err := n.requireElement("setAttribute"); err != nil {
		return err
	}
	if !IsValidName(qn) {
		return newError(InvalidCharacterError, "%q is not a valid attribute name", qn)
	}
	qn = n.attributeName(qn)
	if a := n.Attributes.GetNamedItem(qn); a != nil {
		a.Value = value
		return nil
	}
	n.Attributes.SetNamedItem(&Attr{LocalName: qn, Name: qn, Value: value})
	return nil
}

// SetAttributeNS is https://dom.spec.whatwg.org/#dom-element-setattributens
func (n *Node) SetAttributeNS(ns Namespace, qn, value string) error {
	if err := n.requireElement("setAttributeNS"); err != nil {
		return err
	}
	prefix, localName, err := validateAndExtract(ns, qn)
	if err != nil {
		return err
	}
	for _, a := range n.Attributes.Attrs {
		if a.NamespaceURI == ns && a.LocalName == localName {
			a.Value = value
			return nil
		}
	}
	n.Attributes.SetNamedItem(&Attr{
		NamespaceURI: ns,
		Prefix:       prefix,
		LocalName:    localName,
		Name:         qn,
		Value:        value,
	})
	return nil
}

// GetAttribute returns the value of the attribute named qn.
func (n *Node) GetAttribute(qn string) (string, bool) {
	if n.Element == nil {
		return "", false
	}
	if a := n.Attributes.GetNamedItem(qn); a != nil {
		return a.Value, true
	}
	return "", false
}

func (n *Node) HasAttribute(qn string) bool {
	_, ok := n.GetAttribute(qn)
	return ok
}

// RemoveAttribute is https://dom.spec.whatwg.org/#dom-element-removeattribute
// Removing a missing attribute is not an error.
func (n *Node) RemoveAttribute(qn string) error {
	if err := n.requireElement("removeAttribute"); err != nil {
		return err
	}
	n.Attributes.RemoveNamedItem(qn)
	return nil
}

// AttributeNames returns the qualified names of the attributes in order.
func (n *Node) AttributeNames() []string {
	if n.Element == nil {
		return nil
	}
	names := make([]string, 0, len(n.Attributes.Attrs))
	for _, a := range n.Attributes.Attrs {
		names = append(names, a.Name)
	}
	return names
}

// SetProperty sets an IDL attribute on the element.
func (n *Node) SetProperty(name string, value any) error {
	if err := n.requireElement("set " + name); err != nil {
		return err
	}
	n.Element.Properties[name] = value
	return nil
}

func (n *Node) Property(name string) (any, bool) {
	if n.Element == nil {
		return nil, false
	}
	v, ok := n.Element.Properties[name]
	return v, ok
}

// PropertyNames returns the names of the properties set, sorted.
func (n *Node) PropertyNames() []string {
	if n.Element == nil {
		return nil
	}
	names := make([]string, 0, len(n.Element.Properties))
	for k := range n.Element.Properties {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
