package todom

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/syntax-tree/hast-util-to-dom/todom/dom"
	"github.com/syntax-tree/hast-util-to-dom/todom/hast"
	"github.com/syntax-tree/hast-util-to-dom/todom/schema"
)

// ErrNilNode is returned when a tree holds a nil node.
var ErrNilNode = errors.New("todom: nil node")

// context is the state handed down the recursion. It is copied per level.
type context struct {
	doc              dom.Factory
	fragment         bool
	namespace        string
	impliedNamespace string
	afterTransform   AfterTransform
	log              logrus.FieldLogger
}

// Transform turns node and its descendants into DOM nodes.
//
// A root becomes a Document when it has an html element child or no
// children at all, a DocumentFragment when Options.Fragment is set, and an
// html element wrapping its children otherwise.
func Transform(node hast.Node, opts ...Option) (*dom.Node, error) {
	if isNil(node) {
		return nil, errors.WithStack(ErrNilNode)
	}
	o := newOptions(opts)
	c := context{
		doc:            o.Document,
		fragment:       o.Fragment,
		namespace:      o.Namespace,
		afterTransform: o.AfterTransform,
		log:            o.Logger,
	}
	c.log.WithFields(logrus.Fields{
		"type":      node.Type(),
		"fragment":  o.Fragment,
		"namespace": o.Namespace,
	}).Debug("transforming tree")

	return c.transform(node)
}

func (c context) transform(node hast.Node) (*dom.Node, error) {
	var (
		out *dom.Node
		err error
	)
	if isNil(node) {
		return nil, errors.WithStack(ErrNilNode)
	}
	switch n := node.(type) {
	case *hast.Root:
		out, err = c.root(n)
	case *hast.Text:
		out = c.doc.CreateTextNode(n.Value)
	case *hast.Comment:
		out = c.doc.CreateComment(n.Value)
	case *hast.Doctype:
		out, err = c.doctype(n)
	case *hast.Element:
		out, err = c.element(n.TagName, n.Properties, n.Children)
	case *hast.Other:
		c.log.WithField("kind", n.Kind).Debug("rendering unknown node as element")
		out, err = c.element(n.TagName, n.Properties, n.Children)
	}
	if err != nil {
		return nil, err
	}

	if c.afterTransform != nil {
		c.afterTransform(node, out)
	}
	return out, nil
}

// isNil reports whether node is nil or a nil pointer of one of the hast
// node types.
func isNil(node hast.Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *hast.Root:
		return n == nil
	case *hast.Element:
		return n == nil
	case *hast.Text:
		return n == nil
	case *hast.Comment:
		return n == nil
	case *hast.Doctype:
		return n == nil
	case *hast.Other:
		return n == nil
	}
	return false
}

func (c context) root(n *hast.Root) (*dom.Node, error) {
	namespace := c.namespace
	isDocument := len(n.Children) == 0
	for _, child := range n.Children {
		el, ok := child.(*hast.Element)
		if !ok || el.TagName != "html" {
			continue
		}
		isDocument = true
		if c.namespace == "" {
			namespace = dom.Htmlns
			if xmlns, ok := el.Properties.Get("xmlns"); ok && xmlns.Truthy() {
				namespace = xmlns.String()
			}
		}
	}

	var (
		out *dom.Node
		err error
	)
	switch {
	case isDocument:
		out, err = c.doc.Implementation().CreateDocument(namespace, "", nil)
	case c.fragment:
		out = c.doc.CreateDocumentFragment()
	default:
		out, err = c.doc.CreateElement("html")
	}
	if err != nil {
		c.log.WithError(err).WithField("namespace", namespace).Debug("creating root failed")
		return nil, err
	}

	c.namespace = namespace
	c.impliedNamespace = namespace
	if err := c.appendAll(out, n.Children); err != nil {
		return nil, err
	}
	return out, nil
}

func (c context) doctype(n *hast.Doctype) (*dom.Node, error) {
	name := n.Name
	if name == "" {
		name = "html"
	}
	out, err := c.doc.Implementation().CreateDocumentType(name, n.Public, n.System)
	if err != nil {
		c.log.WithError(err).WithField("name", name).Debug("creating doctype failed")
		return nil, err
	}
	return out, nil
}

func (c context) element(tagName string, props hast.Properties, children []hast.Node) (*dom.Node, error) {
	implied := c.impliedNamespace
	if implied == "" {
		implied = c.namespace
	}
	if tagName == "" {
		tagName = "div"
		if implied == dom.Svgns {
			tagName = "g"
		}
	}
	if (implied == "" || implied == dom.Htmlns) && tagName == "svg" {
		implied = dom.Svgns
	}

	space := schema.HTML
	if implied == dom.Svgns {
		space = schema.SVG
	}

	var (
		out *dom.Node
		err error
	)
	if implied == "" {
		out, err = c.doc.CreateElement(tagName)
	} else {
		out, err = c.doc.CreateElementNS(implied, tagName)
	}
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"tagName":   tagName,
			"namespace": implied,
		}).Debug("creating element failed")
		return nil, err
	}

	for _, prop := range props {
		if err := setProperty(out, schema.Find(space, prop.Name), prop.Value); err != nil {
			c.log.WithError(err).WithFields(logrus.Fields{
				"tagName":  tagName,
				"property": prop.Name,
			}).Debug("setting property failed")
			return nil, err
		}
	}

	c.impliedNamespace = implied
	if err := c.appendAll(out, children); err != nil {
		return nil, err
	}
	return out, nil
}

// setProperty reflects one hast property onto el.
func setProperty(el *dom.Node, info schema.Info, value hast.Value) error {
	if value.IsList() {
		sep := " "
		if info.Is(schema.CommaSeparated) {
			sep = ", "
		}
		value = value.Join(sep)
	}

	if info.Is(schema.MustUseProperty) {
		if err := el.SetProperty(info.Property, value.Interface()); err != nil {
			return err
		}
	}

	switch {
	case info.Is(schema.Boolean) || info.Is(schema.OverloadedBoolean) && value.IsBool():
		if value.Truthy() {
			return el.SetAttribute(info.Attribute, "")
		}
		return el.RemoveAttribute(info.Attribute)
	case info.Is(schema.Booleanish):
		return el.SetAttribute(info.Attribute, value.String())
	case value.Bool():
		return el.SetAttribute(info.Attribute, "")
	case value.Truthy() || value.IsZeroNumber() || value.IsEmptyString():
		return el.SetAttribute(info.Attribute, value.String())
	}
	return nil
}

func (c context) appendAll(parent *dom.Node, children []hast.Node) error {
	for _, child := range children {
		out, err := c.transform(child)
		if err != nil {
			return err
		}
		if _, err := parent.AppendChild(out); err != nil {
			c.log.WithError(err).WithFields(logrus.Fields{
				"parent": parent.NodeName,
				"child":  out.NodeName,
			}).Debug("appending child failed")
			return err
		}
	}
	return nil
}
