package markdown

import "strings"

// Escape replaces the HTML special characters & < > " ' with their
// entity forms.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// Wrap encloses content in the given tag followed by a newline. The
// content must already be escaped as needed. An optional class list
// may be supplied as a single extra argument.
func Wrap(tag, content string, class ...string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	if len(class) > 0 && class[0] != "" {
		b.WriteString(` class="`)
		b.WriteString(class[0])
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(content)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
	return b.String()
}
