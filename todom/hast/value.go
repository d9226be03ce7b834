package hast

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind discriminates the values a property can hold.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	StringKind
	NumberKind
	ListKind
)

// Value is a property value: a boolean, string, number, or an ordered list of
// strings and numbers. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	s    string
	n    float64
	list []Value
}

func Null() Value              { return Value{} }
func Bool(b bool) Value        { return Value{kind: BoolKind, b: b} }
func String(s string) Value    { return Value{kind: StringKind, s: s} }
func Number(n float64) Value   { return Value{kind: NumberKind, n: n} }
func List(vs ...Value) Value   { return Value{kind: ListKind, list: vs} }
func NaN() Value               { return Number(math.NaN()) }
func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsNull() bool   { return v.kind == NullKind }
func (v Value) IsBool() bool   { return v.kind == BoolKind }
func (v Value) IsList() bool   { return v.kind == ListKind }
func (v Value) Items() []Value { return v.list }

// Strings is a list of string values.
func Strings(ss ...string) Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = String(s)
	}
	return List(vs...)
}

// ValueOf converts a Go value to a Value.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case float32:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case []string:
		return Strings(t...), nil
	case []any:
		vs := make([]Value, len(t))
		for i, item := range t {
			v, err := ValueOf(item)
			if err != nil {
				return Value{}, errors.Wrapf(err, "item %d", i)
			}
			if v.kind == ListKind {
				return Value{}, errors.Errorf("item %d: nested lists are not property values", i)
			}
			vs[i] = v
		}
		return List(vs...), nil
	}
	return Value{}, errors.Errorf("unsupported property value of type %T", x)
}

// MustValueOf is like ValueOf but panics on unsupported input.
func MustValueOf(x any) Value {
	v, err := ValueOf(x)
	if err != nil {
		panic(err)
	}
	return v
}

// Bool reports the boolean held by v. It is false for non-boolean values.
func (v Value) Bool() bool {
	return v.kind == BoolKind && v.b
}

// Number reports the number held by v and whether v is a number.
func (v Value) Number() (float64, bool) {
	return v.n, v.kind == NumberKind
}

// Interface returns v as a Go value: nil, bool, string, float64, or []any.
func (v Value) Interface() any {
	switch v.kind {
	case BoolKind:
		return v.b
	case StringKind:
		return v.s
	case NumberKind:
		return v.n
	case ListKind:
		items := make([]any, len(v.list))
		for i, item := range v.list {
			items[i] = item.Interface()
		}
		return items
	}
	return nil
}

// Truthy reports whether v converts to true the way script engines do:
// false, null, 0, NaN and the empty string are falsy. Lists are truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case BoolKind:
		return v.b
	case StringKind:
		return v.s != ""
	case NumberKind:
		return v.n != 0 && !math.IsNaN(v.n)
	case ListKind:
		return true
	}
	return false
}

// IsZeroNumber reports whether v is the number 0.
func (v Value) IsZeroNumber() bool {
	return v.kind == NumberKind && v.n == 0
}

// IsEmptyString reports whether v is the empty string.
func (v Value) IsEmptyString() bool {
	return v.kind == StringKind && v.s == ""
}

// Join flattens a list into a single string value. Other values are returned
// unchanged.
func (v Value) Join(sep string) Value {
	if v.kind != ListKind {
		return v
	}
	parts := make([]string, len(v.list))
	for i, item := range v.list {
		if item.kind != NullKind {
			parts[i] = item.String()
		}
	}
	return String(strings.Join(parts, sep))
}

// String stringifies v: "true", "false", "null", numbers in their shortest
// form ("0", "1.5", "NaN", "Infinity"), and lists joined with commas.
func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case StringKind:
		return v.s
	case NumberKind:
		return formatNumber(v.n)
	case ListKind:
		return v.Join(",").s
	}
	return "null"
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + exp
}

// Equal reports whether v and o hold the same value. NaN equals NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case BoolKind:
		return v.b == o.b
	case StringKind:
		return v.s == o.s
	case NumberKind:
		return v.n == o.n || (math.IsNaN(v.n) && math.IsNaN(o.n))
	case ListKind:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
	}
	return true
}
