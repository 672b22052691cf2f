// Package el provides the element-construction DSL for domkit.
//
// It offers variadic constructors for the common HTML tags plus attribute
// helpers, so trees read like the markup they produce:
//
//	page := el.Div(el.Class("card"),
//	    el.H1("Quarterly Report"),
//	    el.P("Revenue is up ", 5, "%."),
//	)
//
// Constructor arguments may be el.Attr values, *dom.Element children,
// slices of either, nil (skipped, enabling conditionals), or any
// text-coercible value, which becomes a text child.
//
// Unlike the fallible pkg/dom API, constructors panic with the same typed
// dom errors on invalid input, in the template.Must tradition: the DSL is
// meant for literal trees in code, where invalid values are programming
// errors. Validate untrusted input through pkg/dom directly.
package el
