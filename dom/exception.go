package dom

import "fmt"

// DOMException names used by the implementations.
const (
	InvalidCharacterError = "InvalidCharacterError"
	HierarchyRequestError = "HierarchyRequestError"
	NotFoundError         = "NotFoundError"
	InvalidStateError     = "InvalidStateError"
	NotSupportedError     = "NotSupportedError"
)

// Exception is a DOMException raised by a document operation.
type Exception struct {
	Name    string
	Message string
}

// Error implements the error interface.
func (e *Exception) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}

// Throw returns an *Exception with a formatted message.
func Throw(name, format string, args ...any) *Exception {
	return &Exception{Name: name, Message: fmt.Sprintf(format, args...)}
}
