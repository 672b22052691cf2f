// Package render serializes dom trees to markup through an io.Writer.
//
// The package produces the same canonical output as Element.OuterHTML and
// Document.String (attributes tab-separated, single-quoted, and sorted),
// but streams it to a writer and optionally pretty-prints for development.
//
// # Basic Usage
//
// To render an element tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(elem)
//
// To stream markup to a writer:
//
//	err := renderer.RenderToWriter(w, elem)
//
// # Documents
//
// RenderDocument emits the doctype followed by the document element:
//
//	err := renderer.RenderDocument(w, doc)
//
// # Pretty Printing
//
// RendererConfig{Pretty: true} indents nested elements for readability.
// Pretty output inserts whitespace and should only be used in development.
package render
