package el

import "github.com/domkit-dev/domkit/pkg/dom"

// Attr is a single attribute argument for element constructors.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// E creates an element with the given tag and applies the arguments.
// Arguments can be: nil, Attr, []Attr, *dom.Element, []*dom.Element, or a
// text-coercible value. E panics with the typed dom error on invalid input.
func E(tag string, args ...any) *dom.Element {
	e, err := dom.NewElement(tag)
	if err != nil {
		panic(err)
	}
	apply(e, args)
	return e
}

func apply(e *dom.Element, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue

		case Attr:
			setAttr(e, v)

		case []Attr:
			for _, attr := range v {
				setAttr(e, attr)
			}

		case *dom.Element:
			if v != nil {
				mustAppend(e, v)
			}

		case []*dom.Element:
			for _, child := range v {
				if child != nil {
					mustAppend(e, child)
				}
			}

		default:
			// Text-coercible child
			mustAppend(e, v)
		}
	}
}

func setAttr(e *dom.Element, a Attr) {
	if a.IsEmpty() {
		return
	}
	if err := e.SetAttribute(a.Key, a.Value); err != nil {
		panic(err)
	}
}

func mustAppend(e *dom.Element, child any) {
	if err := e.Append(child); err != nil {
		panic(err)
	}
}

// If returns the element if condition is true, nil otherwise.
func If(condition bool, e *dom.Element) *dom.Element {
	if condition {
		return e
	}
	return nil
}

// IfElse returns the first element if condition is true, the second
// otherwise.
func IfElse(condition bool, ifTrue, ifFalse *dom.Element) *dom.Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation. The function is only called if
// condition is true.
func When(condition bool, fn func() *dom.Element) *dom.Element {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, e *dom.Element) *dom.Element {
	if !condition {
		return e
	}
	return nil
}
