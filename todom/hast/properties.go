package hast

// Property is a single name/value pair of an element.
type Property struct {
	Name  string
	Value Value
}

// Properties is the ordered property list of an element. Order is the order
// in which properties were added and is the order attributes are written in.
type Properties []Property

// Prop builds a property from a Go value, see ValueOf. It panics on values
// that cannot be properties.
func Prop(name string, x any) Property {
	return Property{Name: name, Value: MustValueOf(x)}
}

// Props collects properties into a list.
func Props(ps ...Property) Properties {
	return Properties(ps)
}

func (p Properties) Len() int { return len(p) }

// Get returns the value stored under name.
func (p Properties) Get(name string) (Value, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return Value{}, false
}

// Set replaces the value stored under name, or appends it when the name is
// new. The receiver is not modified when an append is needed.
func (p Properties) Set(name string, v Value) Properties {
	for i := range p {
		if p[i].Name == name {
			p[i].Value = v
			return p
		}
	}
	return append(p, Property{Name: name, Value: v})
}

// Names returns the property names in order.
func (p Properties) Names() []string {
	names := make([]string, len(p))
	for i, prop := range p {
		names[i] = prop.Name
	}
	return names
}
