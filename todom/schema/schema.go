// Package schema maps property names of HTML and SVG elements to the
// attributes they are written as, and tells how their values are encoded.
package schema

import (
	"regexp"
	"strings"
)

// Space selects a vocabulary.
type Space int

const (
	HTML Space = iota
	SVG
)

func (s Space) String() string {
	if s == SVG {
		return "svg"
	}
	return "html"
}

// Flag classifies how a property value is encoded.
type Flag uint16

const (
	// MustUseProperty marks values that are set on the DOM object as well.
	MustUseProperty Flag = 1 << iota
	Boolean
	Booleanish
	OverloadedBoolean
	Number
	CommaSeparated
	SpaceSeparated
	CommaOrSpaceSeparated
	// Defined marks data attributes found outside the tables.
	Defined
)

// Info describes one property.
type Info struct {
	Property  string
	Attribute string
	Flags     Flag
	Space     Space
}

// Is reports whether all of f is set.
func (i Info) Is(f Flag) bool {
	return i.Flags&f == f
}

type schema struct {
	property map[string]Info
	normal   map[string]string
}

var (
	htmlSchema = merge(HTML, xmlDef, xlinkDef, xmlnsDef, ariaDef, htmlDef)
	svgSchema  = merge(SVG, xmlDef, xlinkDef, xmlnsDef, ariaDef, svgDef)
)

func merge(space Space, defs ...definition) schema {
	s := schema{property: map[string]Info{}, normal: map[string]string{}}
	for _, def := range defs {
		for prop, flags := range def.properties {
			info := Info{
				Property:  prop,
				Attribute: def.transform(def.attributes, prop),
				Flags:     flags,
				Space:     space,
			}
			for _, p := range def.mustUseProperty {
				if p == prop {
					info.Flags |= MustUseProperty
				}
			}
			s.property[prop] = info
			s.normal[strings.ToLower(prop)] = prop
			s.normal[strings.ToLower(info.Attribute)] = prop
		}
	}
	return s
}

var (
	validData = regexp.MustCompile(`(?i)^data[-\w.:]+$`)
	dashLower = regexp.MustCompile(`-[a-z]`)
	upper     = regexp.MustCompile(`[A-Z]`)
)

// Find looks key up as either a property or an attribute name, ignoring
// case. Unknown data attributes are converted between their property form
// (dataFooBar) and attribute form (data-foo-bar). Any other unknown key is
// used as both property and attribute name.
func Find(space Space, key string) Info {
	s := htmlSchema
	if space == SVG {
		s = svgSchema
	}
	normal := strings.ToLower(key)
	if prop, ok := s.normal[normal]; ok {
		return s.property[prop]
	}

	info := Info{Property: key, Attribute: key, Space: space}
	if len(normal) > 4 && normal[:4] == "data" && validData.MatchString(key) {
		if key[4] == '-' {
			rest := dashLower.ReplaceAllStringFunc(key[5:], func(m string) string {
				return strings.ToUpper(m[1:])
			})
			if rest != "" {
				rest = strings.ToUpper(rest[:1]) + rest[1:]
			}
			info.Property = "data" + rest
		} else {
			rest := key[4:]
			if !dashLower.MatchString(rest) {
				dashes := upper.ReplaceAllStringFunc(rest, func(m string) string {
					return "-" + strings.ToLower(m)
				})
				if dashes[0] != '-' {
					dashes = "-" + dashes
				}
				info.Attribute = "data" + dashes
			}
		}
		info.Flags = Defined
	}
	return info
}
