package dom

import "fmt"

// InvalidNameError reports a tag or attribute name that fails the
// Name-Token grammar.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("dom: invalid name %q", e.Name)
}

// InvalidTextError reports text content or an attribute value containing
// code points outside the XML character-data set.
type InvalidTextError struct {
	Text string
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("dom: invalid text %q", e.Text)
}

// VoidElementError reports an attempt to append content to a void element.
type VoidElementError struct {
	Tag string
}

func (e *VoidElementError) Error() string {
	return fmt.Sprintf("dom: void element <%s> cannot have children", e.Tag)
}

// NotEscapableError reports an attempt to append content to a raw-text
// element, whose body cannot be escaped safely.
type NotEscapableError struct {
	Tag string
}

func (e *NotEscapableError) Error() string {
	return fmt.Sprintf("dom: raw-text element <%s> does not accept content", e.Tag)
}

// RawTextChildError reports an attempt to append an element child to a
// raw-text or escapable raw-text element.
type RawTextChildError struct {
	Tag string
}

func (e *RawTextChildError) Error() string {
	return fmt.Sprintf("dom: raw-text element <%s> cannot have element children", e.Tag)
}

// AlreadyChildError reports an attempt to append an element that is still
// attached to a parent. Detach with Remove before re-parenting.
type AlreadyChildError struct {
	Tag string
}

func (e *AlreadyChildError) Error() string {
	return fmt.Sprintf("dom: element <%s> already has a parent", e.Tag)
}

// CyclicReferenceError reports an attempt to append an element to itself or
// to one of its own descendants.
type CyclicReferenceError struct {
	Tag string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("dom: appending <%s> would create a cycle", e.Tag)
}
