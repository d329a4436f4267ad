package markup

import (
	"html"
	"strings"
)

// RenderHTML renders blocks as an HTML fragment. All text is escaped, so
// HTML embedded in an article is shown literally.
func RenderHTML(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		switch v := blk.(type) {
		case *Heading:
			tag := "h2"
			if v.Level == 3 {
				tag = "h3"
			}
			b.WriteString("<" + tag + ">" + html.EscapeString(v.Text) + "</" + tag + ">\n")

		case *List:
			tag := "ul"
			if v.Kind == Ordered {
				tag = "ol"
			}
			b.WriteString("<" + tag + ">\n")
			for _, item := range v.Items {
				b.WriteString("<li>")
				writeInline(&b, item)
				b.WriteString("</li>\n")
			}
			b.WriteString("</" + tag + ">\n")

		case *Table:
			writeTable(&b, v)

		case *Paragraph:
			b.WriteString("<p>")
			writeInline(&b, v.Spans)
			b.WriteString("</p>\n")
		}
	}
	return b.String()
}

func writeTable(b *strings.Builder, t *Table) {
	b.WriteString("<table>\n<thead>\n<tr>")
	for _, cell := range t.Header {
		b.WriteString("<th>")
		writeInline(b, cell)
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n</thead>\n")
	if len(t.Rows) > 0 {
		b.WriteString("<tbody>\n")
		for _, row := range t.Rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				b.WriteString("<td>")
				writeInline(b, cell)
				b.WriteString("</td>")
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>\n")
}

func writeInline(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		escaped := html.EscapeString(s.Text)
		switch s.Kind {
		case Bold:
			b.WriteString("<strong>" + escaped + "</strong>")
		case Italic:
			b.WriteString("<em>" + escaped + "</em>")
		case Code:
			b.WriteString("<code>" + escaped + "</code>")
		default:
			b.WriteString(escaped)
		}
	}
}
