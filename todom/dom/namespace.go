package dom

// Namespace is an XML namespace URI. The empty namespace is null.
// https://infra.spec.whatwg.org/#namespaces
type Namespace = string

const (
	Htmlns   Namespace = "http://www.w3.org/1999/xhtml"
	Mathmlns Namespace = "http://www.w3.org/1998/Math/MathML"
	Svgns    Namespace = "http://www.w3.org/2000/svg"
	Xlinkns  Namespace = "http://www.w3.org/1999/xlink"
	Xmlns    Namespace = "http://www.w3.org/XML/1998/namespace"
	Xmlnsns  Namespace = "http://www.w3.org/2000/xmlns/"
)

func isNameStartChar(ch rune) bool {
	return ch == ':' ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 0xC0 && ch <= 0xD6) ||
		(ch >= 0xD8 && ch <= 0xF6) ||
		(ch >= 0xF8 && ch <= 0x2FF) ||
		(ch >= 0x370 && ch <= 0x37D) ||
		(ch >= 0x37F && ch <= 0x1FFF) ||
		(ch >= 0x200C && ch <= 0x200D) ||
		(ch >= 0x2070 && ch <= 0x218F) ||
		(ch >= 0x2C00 && ch <= 0x2FEF) ||
		(ch >= 0x3001 && ch <= 0xD7FF) ||
		(ch >= 0xF900 && ch <= 0xFDCF) ||
		(ch >= 0xFDF0 && ch <= 0xFFFD) ||
		(ch >= 0x10000 && ch <= 0xEFFFF)
}

func isNameChar(ch rune) bool {
	return isNameStartChar(ch) ||
		ch == '-' ||
		ch == '.' ||
		(ch >= '0' && ch <= '9') ||
		ch == 0xB7 ||
		(ch >= 0x0300 && ch <= 0x036F) ||
		(ch >= 0x203F && ch <= 0x2040)
}

// IsValidName reports whether name matches the XML Name production.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, ch := range name {
		if i == 0 && !isNameStartChar(ch) || i > 0 && !isNameChar(ch) {
			return false
		}
	}
	return true
}

// validateAndExtract splits a qualified name into prefix and local name and
// checks it against the namespace.
// https://dom.spec.whatwg.org/#validate-and-extract
func validateAndExtract(namespace Namespace, qualifiedName string) (prefix, localName string, err error) {
	if !IsValidName(qualifiedName) {
		return "", "", newError(InvalidCharacterError, "%q is not a valid name", qualifiedName)
	}
	localName = qualifiedName
	for i := 0; i < len(qualifiedName); i++ {
		if qualifiedName[i] == ':' {
			prefix, localName = qualifiedName[:i], qualifiedName[i+1:]
			break
		}
	}
	if prefix != "" || localName != qualifiedName {
		if prefix == "" || localName == "" || !IsValidName(localName) {
			return "", "", newError(InvalidCharacterError, "%q is not a valid qualified name", qualifiedName)
		}
		for _, ch := range localName {
			if ch == ':' {
				return "", "", newError(InvalidCharacterError, "%q is not a valid qualified name", qualifiedName)
			}
		}
	}

	switch {
	case prefix != "" && namespace == "":
		return "", "", newError(NamespaceError, "prefix %q requires a namespace", prefix)
	case prefix == "xml" && namespace != Xmlns:
		return "", "", newError(NamespaceError, "prefix xml is reserved for %s", Xmlns)
	case (qualifiedName == "xmlns" || prefix == "xmlns") && namespace != Xmlnsns:
		return "", "", newError(NamespaceError, "%q is reserved for %s", qualifiedName, Xmlnsns)
	case namespace == Xmlnsns && qualifiedName != "xmlns" && prefix != "xmlns":
		return "", "", newError(NamespaceError, "namespace %s requires the xmlns prefix", Xmlnsns)
	}
	return prefix, localName, nil
}
