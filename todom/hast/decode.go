package hast

import (
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Decode reads a tree from its JSON or YAML form. JSON is read through the
// YAML decoder, which keeps the order of property keys.
func Decode(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding tree")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("decoding tree: empty document")
	}
	return decodeNode(doc.Content[0], "$")
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func fields(n *yaml.Node, path string) (map[string]*yaml.Node, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, errors.Errorf("%s: expected an object", path)
	}
	m := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		m[n.Content[i].Value] = resolve(n.Content[i+1])
	}
	return m, nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func scalar(n *yaml.Node, path string) (string, error) {
	if isNull(n) {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", errors.Errorf("%s: expected a string", path)
	}
	return n.Value, nil
}

func decodeNode(n *yaml.Node, path string) (Node, error) {
	f, err := fields(n, path)
	if err != nil {
		return nil, err
	}
	kind, err := scalar(f["type"], path+".type")
	if err != nil {
		return nil, err
	}

	switch kind {
	case TypeRoot:
		children, err := decodeChildren(f["children"], path)
		if err != nil {
			return nil, err
		}
		return &Root{Children: children}, nil
	case TypeText, TypeComment:
		value, err := scalar(f["value"], path+".value")
		if err != nil {
			return nil, err
		}
		if kind == TypeText {
			return &Text{Value: value}, nil
		}
		return &Comment{Value: value}, nil
	case TypeDoctype:
		d := &Doctype{}
		for key, dst := range map[string]*string{"name": &d.Name, "public": &d.Public, "system": &d.System} {
			if *dst, err = scalar(f[key], path+"."+key); err != nil {
				return nil, err
			}
		}
		return d, nil
	}

	tagName, err := scalar(f["tagName"], path+".tagName")
	if err != nil {
		return nil, err
	}
	props, err := decodeProperties(f["properties"], path+".properties")
	if err != nil {
		return nil, err
	}
	children, err := decodeChildren(f["children"], path)
	if err != nil {
		return nil, err
	}
	if kind == TypeElement {
		return &Element{TagName: tagName, Properties: props, Children: children}, nil
	}
	return &Other{Kind: kind, TagName: tagName, Properties: props, Children: children}, nil
}

func decodeChildren(n *yaml.Node, path string) ([]Node, error) {
	if isNull(n) {
		return nil, nil
	}
	path += ".children"
	if n.Kind != yaml.SequenceNode {
		return nil, errors.Errorf("%s: expected an array", path)
	}
	children := make([]Node, 0, len(n.Content))
	for i, c := range n.Content {
		child, err := decodeNode(c, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func decodeProperties(n *yaml.Node, path string) (Properties, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, errors.Errorf("%s: expected an object", path)
	}
	props := make(Properties, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		v, err := decodeValue(resolve(n.Content[i+1]), path+"."+name, true)
		if err != nil {
			return nil, err
		}
		props = props.Set(name, v)
	}
	return props, nil
}

func decodeValue(n *yaml.Node, path string, allowList bool) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Null(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return Value{}, errors.Wrap(err, path)
			}
			return Bool(b), nil
		case "!!int", "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return Value{}, errors.Wrap(err, path)
			}
			return Number(f), nil
		}
		return String(n.Value), nil
	case yaml.SequenceNode:
		if !allowList {
			return Value{}, errors.Errorf("%s: nested lists are not property values", path)
		}
		items := make([]Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := decodeValue(resolve(c), path+"["+strconv.Itoa(i)+"]", false)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return List(items...), nil
	}
	return Value{}, errors.Errorf("%s: unsupported property value", path)
}
