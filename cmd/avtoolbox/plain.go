package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alnah/go-avtoolbox/internal/markup"
)

// writePlain prints article content as terminal text: underlined headings,
// indented lists and aligned tables, with inline markup removed.
func writePlain(w io.Writer, title, content string) error {
	if title != "" {
		fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", len([]rune(title))))
	}

	for _, b := range markup.Parse(content) {
		switch b := b.(type) {
		case *markup.Heading:
			text := inline(b.Text)
			rule := "-"
			if b.Level > 2 {
				rule = "."
			}
			fmt.Fprintf(w, "%s\n%s\n\n", text, strings.Repeat(rule, len([]rune(text))))
		case *markup.List:
			for i, item := range b.Items {
				marker := "-"
				if b.Kind == markup.Ordered {
					marker = fmt.Sprintf("%d.", i+1)
				}
				fmt.Fprintf(w, "  %s %s\n", marker, markup.PlainText(item))
			}
			fmt.Fprintln(w)
		case *markup.Table:
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			writeRow(tw, b.Header)
			for _, row := range b.Rows {
				writeRow(tw, row)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(w)
		case *markup.Paragraph:
			fmt.Fprintf(w, "%s\n\n", markup.PlainText(b.Spans))
		}
	}
	return nil
}

func writeRow(w io.Writer, cells [][]markup.Span) {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markup.PlainText(c)
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(out, "\t"))
}

func inline(s string) string {
	return markup.PlainText(markup.ParseInline(s))
}

// writeOutline prints headings numbered by level: 1, 1.1, 1.2, 2.
func writeOutline(w io.Writer, headings []markup.Heading) {
	var major, minor int
	for _, h := range headings {
		if h.Level <= 2 {
			major++
			minor = 0
			fmt.Fprintf(w, "%d. %s\n", major, inline(h.Text))
			continue
		}
		minor++
		fmt.Fprintf(w, "   %d.%d %s\n", major, minor, inline(h.Text))
	}
}
