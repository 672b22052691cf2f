// Attribute helpers for the common HTML attributes.
package el

import "strings"

func ID(id string) Attr {
	return Attr{Key: "id", Value: id}
}
func Class(classes ...string) Attr {
	return Attr{Key: "class", Value: strings.Join(classes, " ")}
}
func StyleAttr(style string) Attr {
	return Attr{Key: "style", Value: style}
}
func Data(key, value string) Attr {
	return Attr{Key: "data-" + key, Value: value}
}
func Role(role string) Attr {
	return Attr{Key: "role", Value: role}
}
func Lang(lang string) Attr {
	return Attr{Key: "lang", Value: lang}
}
func Href(url string) Attr {
	return Attr{Key: "href", Value: url}
}
func Src(url string) Attr {
	return Attr{Key: "src", Value: url}
}
func Alt(text string) Attr {
	return Attr{Key: "alt", Value: text}
}
func TitleAttr(text string) Attr {
	return Attr{Key: "title", Value: text}
}
func Type(t string) Attr {
	return Attr{Key: "type", Value: t}
}
func Name(name string) Attr {
	return Attr{Key: "name", Value: name}
}
func Value(v any) Attr {
	return Attr{Key: "value", Value: v}
}
func Placeholder(text string) Attr {
	return Attr{Key: "placeholder", Value: text}
}
func Rel(rel string) Attr {
	return Attr{Key: "rel", Value: rel}
}
func Charset(cs string) Attr {
	return Attr{Key: "charset", Value: cs}
}
func Width(w any) Attr {
	return Attr{Key: "width", Value: w}
}
func Height(h any) Attr {
	return Attr{Key: "height", Value: h}
}
func Colspan(n int) Attr {
	return Attr{Key: "colspan", Value: n}
}
func Rowspan(n int) Attr {
	return Attr{Key: "rowspan", Value: n}
}
func AriaLabel(label string) Attr {
	return Attr{Key: "aria-label", Value: label}
}
func AriaHidden(hidden bool) Attr {
	return Attr{Key: "aria-hidden", Value: hidden}
}
