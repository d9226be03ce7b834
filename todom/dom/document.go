package dom

import (
	"strings"
)

// Factory creates the nodes of a tree. Documents implement it; tests
// substitute their own.
type Factory interface {
	CreateElement(localName string) (*Node, error)
	CreateElementNS(namespace, qualifiedName string) (*Node, error)
	CreateTextNode(data string) *Node
	CreateComment(data string) *Node
	CreateDocumentFragment() *Node
	Implementation() Implementation
}

// Implementation is https://dom.spec.whatwg.org/#domimplementation
type Implementation interface {
	CreateDocument(namespace, qualifiedName string, doctype *Node) (*Node, error)
	CreateDocumentType(qualifiedName, publicID, systemID string) (*Node, error)
}

// Content types of documents.
const (
	ContentTypeHTML  = "text/html"
	ContentTypeXHTML = "application/xhtml+xml"
	ContentTypeSVG   = "image/svg+xml"
	ContentTypeXML   = "application/xml"
)

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	ContentType string
	// Type is "html" or "xml".
	Type string

	node *Node
}

func newDocument(typ, contentType string) *Node {
	n := newNode(DocumentNode, "#document", nil)
	n.Document = &Document{ContentType: contentType, Type: typ, node: n}
	return n
}

// NewHTMLDocument returns an empty HTML document. Elements it creates with
// CreateElement are in the HTML namespace.
func NewHTMLDocument() *Node {
	return newDocument("html", ContentTypeHTML)
}

// NewDocument returns an empty XML document.
func NewDocument() *Node {
	return newDocument("xml", ContentTypeXML)
}

func (d *Document) IsHTML() bool {
	return d.Type == "html"
}

// Doctype returns the document type child, or nil.
func (d *Document) Doctype() *Node {
	return d.node.doctypeChild()
}

// DocumentElement returns the element child, or nil.
func (d *Document) DocumentElement() *Node {
	return d.node.elementChild()
}

// CreateElement is https://dom.spec.whatwg.org/#dom-document-createelement
func (d *Document) CreateElement(localName string) (*Node, error) {
	if !IsValidName(localName) {
		return nil, newError(InvalidCharacterError, "%q is not a valid element name", localName)
	}
	if d.IsHTML() {
		localName = strings.ToLower(localName)
	}
	var ns Namespace
	if d.IsHTML() || d.ContentType == ContentTypeXHTML {
		ns = Htmlns
	}
	return NewElement(d.node, ns, "", localName), nil
}

// CreateElementNS is https://dom.spec.whatwg.org/#dom-document-createelementns
func (d *Document) CreateElementNS(namespace, qualifiedName string) (*Node, error) {
	prefix, localName, err := validateAndExtract(namespace, qualifiedName)
	if err != nil {
		return nil, err
	}
	return NewElement(d.node, namespace, prefix, localName), nil
}

func (d *Document) CreateTextNode(data string) *Node {
	return NewTextNode(d.node, data)
}

func (d *Document) CreateComment(data string) *Node {
	return NewComment(d.node, data)
}

func (d *Document) CreateDocumentFragment() *Node {
	return NewDocumentFragment(d.node)
}

func (d *Document) Implementation() Implementation {
	return &DOMImplementation{document: d.node}
}

// DOMImplementation is the Implementation of a Document.
type DOMImplementation struct {
	document *Node
}

// CreateDocumentType is https://dom.spec.whatwg.org/#dom-domimplementation-createdocumenttype
func (i *DOMImplementation) CreateDocumentType(qualifiedName, publicID, systemID string) (*Node, error) {
	if strings.ContainsAny(qualifiedName, "\t\n\f\r >\x00") {
		return nil, newError(InvalidCharacterError, "%q is not a valid doctype name", qualifiedName)
	}
	return NewDocTypeNode(i.document, qualifiedName, publicID, systemID), nil
}

// CreateDocument is https://dom.spec.whatwg.org/#dom-domimplementation-createdocument
func (i *DOMImplementation) CreateDocument(namespace, qualifiedName string, doctype *Node) (*Node, error) {
	n := NewDocument()
	switch namespace {
	case Htmlns:
		n.ContentType = ContentTypeXHTML
	case Svgns:
		n.ContentType = ContentTypeSVG
	}
	if doctype != nil {
		if _, err := n.AppendChild(doctype); err != nil {
			return nil, err
		}
	}
	if qualifiedName != "" {
		el, err := n.CreateElementNS(namespace, qualifiedName)
		if err != nil {
			return nil, err
		}
		if _, err := n.AppendChild(el); err != nil {
			return nil, err
		}
	}
	return n, nil
}
