package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/domkit-dev/domkit/pkg/dom"
)

// RendererConfig configures the markup renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed output with indentation.
	// Should only be used in development as it inserts whitespace.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer streams dom trees as markup.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders an element tree to a string.
func (r *Renderer) RenderToString(e *dom.Element) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, e); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams an element tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, e *dom.Element) error {
	return r.renderElement(w, e, 0)
}

// RenderDocument streams a complete document, doctype included.
func (r *Renderer) RenderDocument(w io.Writer, d *dom.Document) error {
	if _, err := io.WriteString(w, "<!DOCTYPE\thtml>"); err != nil {
		return err
	}
	if r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return r.renderElement(w, d.DocumentElement(), 0)
}

// RenderDocumentString renders a complete document to a string.
func (r *Renderer) RenderDocumentString(d *dom.Document) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderDocument(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, n dom.Node, depth int) error {
	switch n.Kind {
	case dom.KindElement:
		return r.renderElement(w, n.Elem, depth)
	case dom.KindText:
		return r.renderText(w, n.Text)
	default:
		return fmt.Errorf("render: unknown node kind %d", n.Kind)
	}
}

// renderElement writes an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, e *dom.Element, depth int) error {
	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, e.Name()); err != nil {
		return err
	}
	if err := r.renderAttributes(w, e); err != nil {
		return err
	}

	if e.Void() {
		if _, err := io.WriteString(w, "/>"); err != nil {
			return err
		}
		return r.prettyNewline(w)
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	children := e.Children()
	blockChildren := false
	for _, n := range children {
		if n.Kind == dom.KindElement {
			blockChildren = true
			break
		}
	}

	if r.config.Pretty && blockChildren {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for _, n := range children {
		if err := r.renderNode(w, n, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && blockChildren {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", e.Name()); err != nil {
		return err
	}
	return r.prettyNewline(w)
}

// renderText writes a text node, entity-escaped.
func (r *Renderer) renderText(w io.Writer, text string) error {
	escaped, err := dom.EscapeText(text)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, escaped)
	return err
}

// renderAttributes writes the attributes tab-separated, single-quoted, in
// sorted name order.
func (r *Renderer) renderAttributes(w io.Writer, e *dom.Element) error {
	for _, name := range e.AttributeNames() {
		value, _ := e.GetAttribute(name)
		escaped, err := dom.EscapeText(value)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\t%s='%s'", name, escaped); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) prettyNewline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
