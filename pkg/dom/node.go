package dom

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <span>, etc.
	KindText                    // Plain text node
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is one entry in an Element's child sequence: either a nested element
// or a run of plain text. The union is closed; Kind selects which field is
// meaningful.
type Node struct {
	Kind NodeKind
	Elem *Element // For KindElement
	Text string   // For KindText
}

// ElementNode wraps an element as a child node.
func ElementNode(e *Element) Node {
	return Node{Kind: KindElement, Elem: e}
}

// TextNode wraps already-validated text as a child node.
func TextNode(text string) Node {
	return Node{Kind: KindText, Text: text}
}
