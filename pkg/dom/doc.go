// Package dom provides a safe, server-side document object model.
//
// The package builds an in-memory tree of elements and text nodes and
// serializes it to well-formed XHTML markup. Every mutation validates its
// input: tag and attribute names against the Name-Token grammar, text
// content and attribute values against the XML character-data grammar. A
// finished tree can always be serialized without producing malformed or
// unsafe markup. There is no parsing, no layout, and no event handling; the
// only surface is programmatic construction and serialization.
//
// # Core Types
//
// Element is a single markup element with a tag name, attributes, and an
// ordered sequence of child nodes. A child Node is either a nested *Element
// or plain text. Document wires Elements into the canonical
// html > head, body skeleton and serializes with a doctype prefix.
//
// # Building Trees
//
//	doc := dom.NewDocument()
//	div, _ := doc.CreateElement("div")
//	_ = div.SetAttribute("class", "card")
//	_ = div.Append("Hello, world")
//	_ = doc.Body().Append(div)
//	html := doc.String()
//
// # Element Categories
//
// Void elements (br, img, …) never have children and self-close. Raw-text
// elements (script, style) refuse all content through Append, because their
// bodies are not markup and cannot be escaped safely. Escapable raw-text
// elements (title, textarea) accept text children only.
//
// # Errors
//
// All failures are typed (InvalidNameError, CyclicReferenceError, …) and
// signal programmer misuse rather than transient conditions. Append is
// atomic: it validates every argument before attaching any of them.
//
// # Concurrency
//
// A tree is a plain mutable object graph with no internal locking. It
// requires exclusive access per mutation; callers that share a tree across
// goroutines must serialize access externally.
package dom
