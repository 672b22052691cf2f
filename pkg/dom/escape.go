package dom

import "strings"

// EscapeText validates s against the text grammar and converts the five
// markup-significant characters to their entity equivalents. The ampersand
// is handled first so entities introduced by the later substitutions are
// not escaped twice.
func EscapeText(s string) (string, error) {
	if err := ValidateText(s); err != nil {
		return "", err
	}
	return escapeText(s), nil
}

// escapeText escapes already-validated text.
func escapeText(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '\'':
			buf.WriteString("&apos;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

var unescaper = strings.NewReplacer(
	"&quot;", `"`,
	"&apos;", "'",
	"&gt;", ">",
	"&lt;", "<",
	"&amp;", "&",
)

// UnescapeText reverses the five entity substitutions of EscapeText.
func UnescapeText(s string) string {
	return unescaper.Replace(s)
}
