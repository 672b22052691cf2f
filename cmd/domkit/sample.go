package main

import (
	"fmt"

	"github.com/domkit-dev/domkit/el"
	"github.com/domkit-dev/domkit/pkg/dom"
)

// sampleDocument builds the showcase document used by render and serve.
func sampleDocument(title string) (*dom.Document, error) {
	doc := dom.NewDocument()
	if err := doc.SetTitle(title); err != nil {
		return nil, fmt.Errorf("setting title: %w", err)
	}

	page := el.Div(el.Class("page"),
		el.Header(
			el.H1(title),
			el.P("Built with the domkit element tree, no string concatenation involved."),
		),
		el.Main(
			el.Section(
				el.H2("Escaping"),
				el.P("Text like <script>alert('x')</script> & friends is always escaped."),
			),
			el.Section(
				el.H2("Element categories"),
				el.Ul(
					el.Li("void elements self-close: ", el.Code("<br/>")),
					el.Li("raw-text elements stay empty: ", el.Code("<script>")),
					el.Li("titles accept text only"),
				),
			),
			el.Hr(),
			el.Table(
				el.Caption("Attribute rendering"),
				el.Thead(el.Tr(el.Th("name"), el.Th("value"))),
				el.Tbody(
					el.Tr(el.Td("quoting"), el.Td("single quotes, entity-escaped")),
					el.Tr(el.Td("order"), el.Td("sorted by name")),
				),
			),
		),
		el.Footer(el.Small("generated by domkit ", version)),
	)

	if err := doc.Body().Append(page); err != nil {
		return nil, fmt.Errorf("building sample body: %w", err)
	}
	return doc, nil
}
