package dom

const (
	xhtmlNamespace = "http://www.w3.org/1999/xhtml"
	xlinkNamespace = "http://www.w3.org/1999/xlink"

	doctype = "<!DOCTYPE\thtml>"
)

// Document is a complete markup document: a fixed html > head, body
// skeleton with a meta charset and a title wired in at construction time.
type Document struct {
	html    *Element
	head    *Element
	body    *Element
	charset *Element
	title   *Element
}

// NewDocument builds the canonical document skeleton.
func NewDocument() *Document {
	d := &Document{
		html:    mustElement("html"),
		head:    mustElement("head"),
		body:    mustElement("body"),
		charset: mustElement("meta"),
		title:   mustElement("title"),
	}

	// The skeleton is built from fixed, known-valid pieces; none of these
	// calls can fail.
	must(d.html.SetAttribute("xmlns", xhtmlNamespace))
	must(d.html.SetAttribute("xmlns:xlink", xlinkNamespace))
	must(d.charset.SetAttribute("charset", "UTF-8"))
	must(d.head.Append(d.charset, d.title))
	must(d.html.Append(d.head, d.body))

	d.html.doc = d
	return d
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// CreateElement creates a detached element owned by no tree yet. Identical
// to NewElement; provided for DOM-shaped call sites.
func (d *Document) CreateElement(tag string) (*Element, error) {
	return NewElement(tag)
}

// DocumentElement returns the root <html> element.
func (d *Document) DocumentElement() *Element {
	return d.html
}

// Head returns the <head> element.
func (d *Document) Head() *Element {
	return d.head
}

// Body returns the <body> element.
func (d *Document) Body() *Element {
	return d.body
}

// Charset returns the <meta charset> element under head.
func (d *Document) Charset() *Element {
	return d.charset
}

// TitleElement returns the <title> element under head.
func (d *Document) TitleElement() *Element {
	return d.title
}

// Title returns the document title as plain, unescaped text.
func (d *Document) Title() string {
	return UnescapeText(d.title.InnerText())
}

// SetTitle replaces the title text. The value is subject to the text
// grammar.
func (d *Document) SetTitle(value any) error {
	return d.title.SetInnerText(value)
}

// String serializes the whole document with the doctype prefix.
func (d *Document) String() string {
	return doctype + d.html.OuterHTML()
}
