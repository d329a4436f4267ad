package markup

import (
	"regexp"
	"strings"
)

var (
	lineEndings   = regexp.MustCompile(`\r\n?`)
	orderedPrefix = regexp.MustCompile(`^\d+\.\s`)
)

// Parse splits content into lines and parses them. CRLF and CR line
// endings are treated as LF.
func Parse(content string) []Block {
	return ParseLines(strings.Split(lineEndings.ReplaceAllString(content, "\n"), "\n"))
}

// ParseLines scans lines in a single forward pass. A table is recognized
// with one line of lookahead.
func ParseLines(lines []string) []Block {
	p := &parser{}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case strings.HasPrefix(line, "## "):
			p.emit(&Heading{Level: 2, Text: line[len("## "):]})

		case strings.HasPrefix(line, "### "):
			p.emit(&Heading{Level: 3, Text: line[len("### "):]})

		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			p.addItem(Unordered, line[2:])

		case orderedPrefix.MatchString(line):
			p.addItem(Ordered, orderedPrefix.ReplaceAllString(line, ""))

		case strings.HasPrefix(line, "| ") && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "|"):
			end := i
			for end < len(lines) && strings.HasPrefix(lines[end], "|") {
				end++
			}
			if t := parseTable(lines[i:end]); t != nil {
				p.emit(t)
			} else {
				p.flush()
			}
			i = end - 1

		case strings.TrimSpace(line) == "":
			p.flush()

		default:
			p.emit(&Paragraph{Spans: ParseInline(line)})
		}
	}

	p.flush()
	return p.blocks
}

type parser struct {
	blocks  []Block
	pending *List
}

// emit flushes any pending list, then appends b.
func (p *parser) emit(b Block) {
	p.flush()
	p.blocks = append(p.blocks, b)
}

func (p *parser) addItem(kind ListKind, text string) {
	if p.pending != nil && p.pending.Kind != kind {
		p.flush()
	}
	if p.pending == nil {
		p.pending = &List{Kind: kind}
	}
	p.pending.Items = append(p.pending.Items, ParseInline(text))
}

func (p *parser) flush() {
	if p.pending == nil {
		return
	}
	p.blocks = append(p.blocks, p.pending)
	p.pending = nil
}

// parseTable converts consecutive "|" lines into a table. Separator lines
// (containing "---") are dropped and the first remaining row is the header.
// It returns nil when every line is a separator.
func parseTable(lines []string) *Table {
	var t *Table
	for _, line := range lines {
		if strings.Contains(line, "---") {
			continue
		}
		row := splitRow(line)
		if t == nil {
			t = &Table{Header: row}
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// splitRow splits on "|", trims cells, and drops empty leading and
// trailing cells. Empty cells in between are kept.
func splitRow(line string) [][]Span {
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	row := make([][]Span, len(cells))
	for i, c := range cells {
		row[i] = ParseInline(c)
	}
	return row
}
