package memdom

import (
	"unicode"
	"unicode/utf8"

	"github.com/eltkit/elt/dom"
)

// validName reports whether s matches the XML Name production that
// createElement and setAttribute enforce.
func validName(s string) bool {
	if s == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(s)
	if !isNameStart(r) {
		return false
	}
	for _, r := range s[size:] {
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

func isNameStart(r rune) bool {
	return r == ':' || r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	switch {
	case isNameStart(r):
		return true
	case r == '-' || r == '.' || r == 0xB7:
		return true
	case unicode.IsDigit(r):
		return true
	case unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r):
		return true
	}
	return false
}

func checkName(kind, name string) error {
	if !validName(name) {
		return dom.Throw(dom.InvalidCharacterError, "%s name %q is not a valid name", kind, name)
	}
	return nil
}
