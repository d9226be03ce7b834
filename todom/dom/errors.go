package dom

import (
	"fmt"

	"github.com/pkg/errors"
)

// DOMError is a DOMException: a named failure raised by a DOM operation.
// https://webidl.spec.whatwg.org/#idl-DOMException
type DOMError struct {
	Name    string
	Message string
}

func (e *DOMError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// Names of the exceptions raised by this package.
const (
	HierarchyRequestError = "HierarchyRequestError"
	InvalidCharacterError = "InvalidCharacterError"
	NamespaceError        = "NamespaceError"
	InvalidNodeTypeError  = "InvalidNodeTypeError"
)

func newError(name, format string, args ...interface{}) error {
	return errors.WithStack(&DOMError{Name: name, Message: fmt.Sprintf(format, args...)})
}

// IsDOMError reports whether err is a DOMError with the given name.
func IsDOMError(err error, name string) bool {
	var de *DOMError
	return errors.As(err, &de) && de.Name == name
}
