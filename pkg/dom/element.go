package dom

import (
	"fmt"
	"sort"
	"strings"
)

// Element is an individual markup element: a case-preserved tag name, an
// attribute map, and an ordered sequence of child nodes. The zero value is
// not usable; construct with NewElement or Document.CreateElement.
type Element struct {
	realName  string // as supplied, used verbatim in output tags
	name      string // lowercased, used for category lookups
	void      bool
	raw       bool
	escapable bool

	attrs    map[string]string
	children []Node

	parent *Element
	doc    *Document // set only on a Document's root element
}

// NewElement creates a detached element. The tag name must match the
// Name-Token grammar; case is preserved in output.
func NewElement(tag string) (*Element, error) {
	if err := ValidateName(tag); err != nil {
		return nil, err
	}
	name := strings.ToLower(tag)
	return &Element{
		realName:  tag,
		name:      name,
		void:      VoidElements[name],
		raw:       RawTextElements[name] || EscapableRawTextElements[name],
		escapable: !RawTextElements[name],
		attrs:     make(map[string]string),
	}, nil
}

// mustElement constructs an element from a tag name known to be valid.
func mustElement(tag string) *Element {
	e, err := NewElement(tag)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the tag name exactly as supplied at construction.
func (e *Element) Name() string {
	return e.realName
}

// TagName returns the tag name upper-cased, in the DOM convention.
func (e *Element) TagName() string {
	return strings.ToUpper(e.realName)
}

// LocalName returns the tag name lower-cased.
func (e *Element) LocalName() string {
	return e.name
}

// Void reports whether the element is a void element.
func (e *Element) Void() bool {
	return e.void
}

// RawText reports whether the element is in the raw-text or escapable
// raw-text category.
func (e *Element) RawText() bool {
	return e.raw
}

// ParentElement returns the containing element, or nil while detached.
func (e *Element) ParentElement() *Element {
	return e.parent
}

// OwnerDocument walks up the parent chain and returns the Document owning
// the root, or nil if the tree is not attached to one.
func (e *Element) OwnerDocument() *Document {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root.doc
}

// Children returns a copy of the child sequence, elements and text
// intermixed in insertion order.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Append validates and attaches children. Each argument is either an
// *Element or a text-coercible value (string, bool, integer, float,
// fmt.Stringer; anything else through fmt's %v verb).
//
// Append is atomic: every argument is validated before any is attached, so
// a failed call leaves the tree unmodified.
func (e *Element) Append(args ...any) error {
	if e.void {
		return &VoidElementError{Tag: e.name}
	}
	if !e.escapable {
		return &NotEscapableError{Tag: e.name}
	}

	// First pass: validate everything, coercing text up front.
	nodes := make([]Node, 0, len(args))
	seen := map[*Element]bool{}
	for _, arg := range args {
		if child, ok := arg.(*Element); ok {
			// A duplicate in the same call would end up with two slots.
			if child.parent != nil || seen[child] {
				return &AlreadyChildError{Tag: child.name}
			}
			seen[child] = true
			if e.raw {
				return &RawTextChildError{Tag: e.name}
			}
			// Walk up from e; finding the candidate means it is e itself
			// or one of e's ancestors.
			for anc := e; anc != nil; anc = anc.parent {
				if anc == child {
					return &CyclicReferenceError{Tag: child.name}
				}
			}
			nodes = append(nodes, ElementNode(child))
			continue
		}

		text := textValue(arg)
		if err := ValidateText(text); err != nil {
			return err
		}
		nodes = append(nodes, TextNode(text))
	}

	// Second pass: attach in argument order.
	for _, n := range nodes {
		if n.Kind == KindElement {
			n.Elem.parent = e
		}
		e.children = append(e.children, n)
	}
	return nil
}

// Remove detaches the element from its parent. A no-op while detached.
// Descendants stay attached to the removed element.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, n := range p.children {
		if n.Kind == KindElement && n.Elem == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Clear detaches every element child and drops all text children, leaving
// the child sequence empty. The detached children keep their own subtrees.
func (e *Element) Clear() {
	for _, n := range e.children {
		if n.Kind == KindElement {
			n.Elem.parent = nil
		}
	}
	e.children = nil
}

// SetAttribute validates and stores an attribute, overwriting any previous
// value. The value goes through the same text coercion as Append.
func (e *Element) SetAttribute(name string, value any) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	text := textValue(value)
	if err := ValidateText(text); err != nil {
		return err
	}
	e.attrs[name] = text
	return nil
}

// AttributeNames returns the attribute names sorted ascending, the order
// they serialize in.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAttribute returns the attribute value and whether it is set.
func (e *Element) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttribute reports whether the attribute is set.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// RemoveAttribute deletes an attribute. Removing an unset attribute is a
// no-op.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// InnerHTML serializes the child sequence: element children contribute
// their own markup, text children are entity-escaped.
func (e *Element) InnerHTML() string {
	var buf strings.Builder
	for _, n := range e.children {
		switch n.Kind {
		case KindElement:
			n.Elem.writeTo(&buf)
		case KindText:
			buf.WriteString(escapeText(n.Text))
		}
	}
	return buf.String()
}

// InnerText flattens the subtree to escaped plain text, recursing into
// element children instead of serializing their markup.
func (e *Element) InnerText() string {
	var buf strings.Builder
	e.writeInnerText(&buf)
	return buf.String()
}

func (e *Element) writeInnerText(buf *strings.Builder) {
	for _, n := range e.children {
		switch n.Kind {
		case KindElement:
			n.Elem.writeInnerText(buf)
		case KindText:
			buf.WriteString(escapeText(n.Text))
		}
	}
}

// SetInnerText replaces all children with a single text child. Subject to
// the same category and grammar rules as Clear and Append.
func (e *Element) SetInnerText(value any) error {
	if e.void {
		return &VoidElementError{Tag: e.name}
	}
	if !e.escapable {
		return &NotEscapableError{Tag: e.name}
	}
	text := textValue(value)
	if err := ValidateText(text); err != nil {
		return err
	}
	e.Clear()
	e.children = append(e.children, TextNode(text))
	return nil
}

// OuterHTML serializes the element: attributes tab-separated, single-quoted
// and sorted by name; void elements self-close.
func (e *Element) OuterHTML() string {
	var buf strings.Builder
	e.writeTo(&buf)
	return buf.String()
}

// String returns OuterHTML for fmt and friends.
func (e *Element) String() string {
	return e.OuterHTML()
}

func (e *Element) writeTo(buf *strings.Builder) {
	buf.WriteByte('<')
	buf.WriteString(e.realName)

	if len(e.attrs) > 0 {
		for _, name := range e.AttributeNames() {
			buf.WriteByte('\t')
			buf.WriteString(name)
			buf.WriteString("='")
			buf.WriteString(escapeText(e.attrs[name]))
			buf.WriteByte('\'')
		}
	}

	if e.void {
		buf.WriteString("/>")
		return
	}

	buf.WriteByte('>')
	for _, n := range e.children {
		switch n.Kind {
		case KindElement:
			n.Elem.writeTo(buf)
		case KindText:
			buf.WriteString(escapeText(n.Text))
		}
	}
	buf.WriteString("</")
	buf.WriteString(e.realName)
	buf.WriteByte('>')
}

// textValue coerces a non-element Append argument to its string form.
func textValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
