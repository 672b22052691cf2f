package dom

import "strings"

// VoidElements are elements that cannot have children and serialize
// self-closing. Keys are lowercase tag names.
var VoidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// RawTextElements are elements whose content is not markup. They refuse all
// content through Append.
var RawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// EscapableRawTextElements are raw-text-like elements that still accept
// plain text children.
var EscapableRawTextElements = map[string]bool{
	"textarea": true,
	"title":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return VoidElements[strings.ToLower(tag)]
}

// IsRawTextElement returns true if the tag is a raw-text or escapable
// raw-text element.
func IsRawTextElement(tag string) bool {
	tag = strings.ToLower(tag)
	return RawTextElements[tag] || EscapableRawTextElements[tag]
}

// IsEscapableRawTextElement returns true if the tag is an escapable
// raw-text element.
func IsEscapableRawTextElement(tag string) bool {
	return EscapableRawTextElements[strings.ToLower(tag)]
}
