package markup

import (
	"regexp"
	"strings"
)

// SpanKind is the formatting of an inline span.
type SpanKind int

// Inline span kinds.
const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
)

// String returns the kind name.
func (k SpanKind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	default:
		return "text"
	}
}

// Span is a run of inline text with its delimiters removed.
type Span struct {
	Kind SpanKind
	Text string
}

// inlineSpan matches bold before italic so "**x**" is never read as
// two italic delimiters.
var inlineSpan = regexp.MustCompile("\\*\\*[^*]+\\*\\*|\\*[^*]+\\*|`[^`]+`")

// ParseInline splits text into plain, bold, italic and code spans in
// order. Spans do not nest and empty plain runs are omitted.
func ParseInline(text string) []Span {
	var spans []Span
	last := 0

	for _, loc := range inlineSpan.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Kind: Plain, Text: text[last:loc[0]]})
		}
		spans = append(spans, delimited(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Kind: Plain, Text: text[last:]})
	}
	return spans
}

func delimited(m string) Span {
	switch {
	case strings.HasPrefix(m, "**"):
		return Span{Kind: Bold, Text: m[2 : len(m)-2]}
	case strings.HasPrefix(m, "`"):
		return Span{Kind: Code, Text: m[1 : len(m)-1]}
	default:
		return Span{Kind: Italic, Text: m[1 : len(m)-1]}
	}
}

// PlainText concatenates span text, dropping all formatting.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
