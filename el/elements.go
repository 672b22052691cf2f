// Element constructors for the common HTML tags.
package el

import "github.com/domkit-dev/domkit/pkg/dom"

func Html(args ...any) *dom.Element {
	return E("html", args...)
}
func Head(args ...any) *dom.Element {
	return E("head", args...)
}
func Body(args ...any) *dom.Element {
	return E("body", args...)
}
func Title(args ...any) *dom.Element {
	return E("title", args...)
}
func Meta(args ...any) *dom.Element {
	return E("meta", args...)
}
func LinkEl(args ...any) *dom.Element {
	return E("link", args...)
}
func Base(args ...any) *dom.Element {
	return E("base", args...)
}
func Header(args ...any) *dom.Element {
	return E("header", args...)
}
func Footer(args ...any) *dom.Element {
	return E("footer", args...)
}
func Main(args ...any) *dom.Element {
	return E("main", args...)
}
func Nav(args ...any) *dom.Element {
	return E("nav", args...)
}
func Section(args ...any) *dom.Element {
	return E("section", args...)
}
func Article(args ...any) *dom.Element {
	return E("article", args...)
}
func Aside(args ...any) *dom.Element {
	return E("aside", args...)
}
func H1(args ...any) *dom.Element {
	return E("h1", args...)
}
func H2(args ...any) *dom.Element {
	return E("h2", args...)
}
func H3(args ...any) *dom.Element {
	return E("h3", args...)
}
func H4(args ...any) *dom.Element {
	return E("h4", args...)
}
func H5(args ...any) *dom.Element {
	return E("h5", args...)
}
func H6(args ...any) *dom.Element {
	return E("h6", args...)
}
func Div(args ...any) *dom.Element {
	return E("div", args...)
}
func P(args ...any) *dom.Element {
	return E("p", args...)
}
func Span(args ...any) *dom.Element {
	return E("span", args...)
}
func Pre(args ...any) *dom.Element {
	return E("pre", args...)
}
func Blockquote(args ...any) *dom.Element {
	return E("blockquote", args...)
}
func Ul(args ...any) *dom.Element {
	return E("ul", args...)
}
func Ol(args ...any) *dom.Element {
	return E("ol", args...)
}
func Li(args ...any) *dom.Element {
	return E("li", args...)
}
func Dl(args ...any) *dom.Element {
	return E("dl", args...)
}
func Dt(args ...any) *dom.Element {
	return E("dt", args...)
}
func Dd(args ...any) *dom.Element {
	return E("dd", args...)
}
func Hr(args ...any) *dom.Element {
	return E("hr", args...)
}
func Figure(args ...any) *dom.Element {
	return E("figure", args...)
}
func Figcaption(args ...any) *dom.Element {
	return E("figcaption", args...)
}
func A(args ...any) *dom.Element {
	return E("a", args...)
}
func Strong(args ...any) *dom.Element {
	return E("strong", args...)
}
func Em(args ...any) *dom.Element {
	return E("em", args...)
}
func Code(args ...any) *dom.Element {
	return E("code", args...)
}
func Small(args ...any) *dom.Element {
	return E("small", args...)
}
func Br(args ...any) *dom.Element {
	return E("br", args...)
}
func Wbr(args ...any) *dom.Element {
	return E("wbr", args...)
}
func Img(args ...any) *dom.Element {
	return E("img", args...)
}
func Table(args ...any) *dom.Element {
	return E("table", args...)
}
func Caption(args ...any) *dom.Element {
	return E("caption", args...)
}
func Thead(args ...any) *dom.Element {
	return E("thead", args...)
}
func Tbody(args ...any) *dom.Element {
	return E("tbody", args...)
}
func Tfoot(args ...any) *dom.Element {
	return E("tfoot", args...)
}
func Tr(args ...any) *dom.Element {
	return E("tr", args...)
}
func Th(args ...any) *dom.Element {
	return E("th", args...)
}
func Td(args ...any) *dom.Element {
	return E("td", args...)
}
func Form(args ...any) *dom.Element {
	return E("form", args...)
}
func Input(args ...any) *dom.Element {
	return E("input", args...)
}
func Label(args ...any) *dom.Element {
	return E("label", args...)
}
func Button(args ...any) *dom.Element {
	return E("button", args...)
}
func Select(args ...any) *dom.Element {
	return E("select", args...)
}
func Option(args ...any) *dom.Element {
	return E("option", args...)
}
func Textarea(args ...any) *dom.Element {
	return E("textarea", args...)
}
func Script(args ...any) *dom.Element {
	return E("script", args...)
}
func Style(args ...any) *dom.Element {
	return E("style", args...)
}
