package dom

import (
	"strings"

	a "golang.org/x/net/html/atom"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"\"", "&quot;",
		"<", "&lt;",
		">", "&gt;",
		"\t", "&#x9;",
		"\n", "&#xA;",
		"\r", "&#xD;",
	)
)

// isVoid reports whether an HTML element never has an end tag when
// serialized as XML.
func isVoid(localName string) bool {
	switch a.Lookup([]byte(localName)) {
	case a.Area, a.Base, a.Basefont, a.Bgsound, a.Br, a.Col, a.Embed, a.Frame,
		a.Hr, a.Img, a.Input, a.Keygen, a.Link, a.Meta, a.Param, a.Source,
		a.Track, a.Wbr:
		return true
	}
	return localName == "menuitem"
}

type xmlSerializer struct {
	sb strings.Builder
	// html drops the default namespace declarations that only repeat the
	// HTML namespace, and the SVG one on svg and g elements.
	html bool
}

// SerializeXML serializes n and its descendants as XML, the way
// XMLSerializer.serializeToString does.
// https://w3c.github.io/DOM-Parsing/#dfn-xml-serialization
func SerializeXML(n *Node) string {
	s := &xmlSerializer{}
	s.node(n, "")
	return s.sb.String()
}

// SerializeHTML is SerializeXML without the namespace declarations an HTML
// reader infers on its own.
func SerializeHTML(n *Node) string {
	s := &xmlSerializer{html: true}
	s.node(n, "")
	return s.sb.String()
}

func (s *xmlSerializer) node(n *Node, contextNS Namespace) {
	switch n.NodeType {
	case DocumentNode, DocumentFragmentNode:
		for _, c := range n.ChildNodes {
			s.node(c, contextNS)
		}
	case ElementNode:
		s.element(n, contextNS)
	case TextNode:
		s.sb.WriteString(textEscaper.Replace(n.CharacterData.Data))
	case CDATASectionNode:
		s.sb.WriteString("<![CDATA[" + n.CharacterData.Data + "]]>")
	case CommentNode:
		s.sb.WriteString("<!--" + n.CharacterData.Data + "-->")
	case DocumentTypeNode:
		s.doctype(n.DocumentType)
	}
}

func (s *xmlSerializer) doctype(dt *DocumentType) {
	s.sb.WriteString("<!DOCTYPE " + dt.Name)
	if dt.PublicID != "" {
		s.sb.WriteString(" PUBLIC \"" + dt.PublicID + "\"")
	} else if dt.SystemID != "" {
		s.sb.WriteString(" SYSTEM")
	}
	if dt.SystemID != "" {
		s.sb.WriteString(" \"" + dt.SystemID + "\"")
	}
	s.sb.WriteString(">")
}

func (s *xmlSerializer) dropDeclaration(el *Element, ns Namespace) bool {
	if !s.html {
		return false
	}
	switch ns {
	case Htmlns:
		return true
	case Svgns:
		return el.Prefix == "" && (el.LocalName == "svg" || el.LocalName == "g")
	}
	return false
}

func (s *xmlSerializer) element(n *Node, contextNS Namespace) {
	el := n.Element
	qn := el.LocalName
	if el.Prefix != "" {
		qn = el.Prefix + ":" + qn
	}
	s.sb.WriteString("<" + qn)

	declared := false
	for _, attr := range el.Attributes.Attrs {
		if attr.NamespaceURI == "" && (attr.Name == "xmlns" || el.Prefix != "" && attr.Name == "xmlns:"+el.Prefix) {
			declared = true
		}
	}
	if !declared && el.NamespaceURI != contextNS {
		decl := "xmlns"
		if el.Prefix != "" {
			decl += ":" + el.Prefix
		}
		if el.Prefix != "" || !s.dropDeclaration(el, el.NamespaceURI) {
			s.sb.WriteString(" " + decl + "=\"" + attrEscaper.Replace(el.NamespaceURI) + "\"")
		}
	}
	for _, attr := range el.Attributes.Attrs {
		if attr.Name == "xmlns" && s.dropDeclaration(el, attr.Value) {
			continue
		}
		s.sb.WriteString(" " + attr.Name + "=\"" + attrEscaper.Replace(attr.Value) + "\"")
	}

	if len(n.ChildNodes) == 0 {
		switch {
		case el.NamespaceURI == Htmlns && isVoid(el.LocalName):
			s.sb.WriteString(" />")
			return
		case el.NamespaceURI != Htmlns:
			s.sb.WriteString("/>")
			return
		}
	}
	s.sb.WriteString(">")
	for _, c := range n.ChildNodes {
		s.node(c, el.NamespaceURI)
	}
	s.sb.WriteString("</" + qn + ">")
}
