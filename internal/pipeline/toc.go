package pipeline

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// numbering produces hierarchical "1.", "1.1." labels. The shallowest
// level seen first becomes depth 1 and skipped levels nest one step.
type numbering struct {
	counters [6]int
	minLevel int
	last     int
}

func (n *numbering) next(level int) (label string, depth int) {
	if n.minLevel == 0 {
		n.minLevel = level
	}
	depth = max(level-n.minLevel+1, 1)
	if n.last > 0 && depth > n.last+1 {
		depth = n.last + 1
	}
	for i := depth; i < len(n.counters); i++ {
		n.counters[i] = 0
	}
	n.counters[depth-1]++
	n.last = depth

	parts := make([]string, depth)
	for i := range depth {
		parts[i] = strconv.Itoa(n.counters[i])
	}
	return strings.Join(parts, ".") + ".", depth
}

// TOC renders a numbered table of contents linking to anchors. It
// returns "" when there are no anchors.
func TOC(anchors []Anchor, title string) string {
	if len(anchors) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<nav class="toc">`)
	if title != "" {
		b.WriteString(`<h2 class="toc-title">` + html.EscapeString(title) + `</h2>`)
	}
	b.WriteString(`<div class="toc-list">`)

	var num numbering
	for _, a := range anchors {
		label, depth := num.next(a.Level)
		b.WriteString(`<div class="toc-item"`)
		if depth > 1 {
			fmt.Fprintf(&b, ` style="padding-left:%.1fem"`, float64(depth-1)*1.5)
		}
		b.WriteString(`><a href="#` + html.EscapeString(a.ID) + `">`)
		b.WriteString(label + " " + html.EscapeString(a.Text))
		b.WriteString(`</a></div>`)
	}
	b.WriteString(`</div></nav>`)
	return b.String()
}
