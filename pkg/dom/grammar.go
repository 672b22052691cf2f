package dom

import (
	"regexp"
	"unicode/utf8"
)

// nameToken is an XML-style NCName, optionally namespace-prefixed with a
// second colon-separated NCName. Anchored over the full string.
var nameToken = regexp.MustCompile(`^[_A-Za-z][-_.A-Za-z0-9]*(:[_A-Za-z][-_.A-Za-z0-9]*)?$`)

// ValidName reports whether s is a valid tag or attribute name.
func ValidName(s string) bool {
	return nameToken.MatchString(s)
}

// ValidateName returns an *InvalidNameError if s is not a valid tag or
// attribute name.
func ValidateName(s string) error {
	if !ValidName(s) {
		return &InvalidNameError{Name: s}
	}
	return nil
}

// ValidText reports whether every code point of s is valid XML 1.0
// character data: TAB, LF, CR, and the Unicode scalar values excluding
// surrogates, most control characters, and the two final noncharacters of
// the BMP. The empty string is valid.
func ValidText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

// ValidateText returns an *InvalidTextError if s is not valid text content.
func ValidateText(s string) error {
	if !ValidText(s) {
		return &InvalidTextError{Text: s}
	}
	return nil
}
