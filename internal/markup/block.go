package markup

// Block is one parsed unit of an article: *Heading, *List, *Table or
// *Paragraph.
type Block interface {
	block()
}

// Heading is a "## " or "### " line.
type Heading struct {
	Level int
	Text  string
}

// ListKind distinguishes bullet and numbered lists.
type ListKind int

// List kinds.
const (
	Unordered ListKind = iota
	Ordered
)

// String returns "unordered" or "ordered".
func (k ListKind) String() string {
	if k == Ordered {
		return "ordered"
	}
	return "unordered"
}

// List is a run of consecutive items of one kind. Each item is the inline
// spans of its text with the marker removed.
type List struct {
	Kind  ListKind
	Items [][]Span
}

// Table is a pipe table of inline spans per cell. Rows may have a
// different cell count than Header.
type Table struct {
	Header [][]Span
	Rows   [][][]Span
}

// Paragraph is a single line of running text.
type Paragraph struct {
	Spans []Span
}

func (*Heading) block()   {}
func (*List) block()      {}
func (*Table) block()     {}
func (*Paragraph) block() {}

// Headings returns the heading blocks in document order.
func Headings(blocks []Block) []Heading {
	var out []Heading
	for _, b := range blocks {
		if h, ok := b.(*Heading); ok {
			out = append(out, *h)
		}
	}
	return out
}
