// Package display formats calculator results for people: grouped numbers,
// title-cased labels and aligned field listings.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/alnah/go-avtoolbox/internal/formula"
)

// Field is one labeled output value.
type Field struct {
	Label     string `json:"label" yaml:"label"`
	Value     string `json:"value" yaml:"value"`
	Unit      string `json:"unit,omitempty" yaml:"unit,omitempty"`
	Highlight bool   `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

// String joins value and unit.
func (f Field) String() string {
	if f.Unit == "" || f.Value == formula.Undefined {
		return f.Value
	}
	return f.Value + " " + f.Unit
}

// Formatter renders numbers and labels for one language.
type Formatter struct {
	printer *message.Printer
	title   cases.Caser
}

// New returns a Formatter for tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
		title:   cases.Title(tag),
	}
}

// English is the formatter used by the CLI.
var English = New(language.English)

// Int formats n with digit grouping, e.g. 2,073,600.
func (f *Formatter) Int(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Float formats v with prec decimals and digit grouping.
func (f *Formatter) Float(v float64, prec int) string {
	return f.printer.Sprintf("%."+strconv.Itoa(prec)+"f", v)
}

// Quantity formats a possibly undefined value.
func (f *Formatter) Quantity(q formula.Quantity, prec int) string {
	v, ok := q.Value()
	if !ok {
		return formula.Undefined
	}
	return f.Float(v, prec)
}

// Title title-cases s ("needs correction" -> "Needs Correction").
func (f *Formatter) Title(s string) string {
	return f.title.String(s)
}

// Highlight is the marker printed before highlighted fields.
const Highlight = "▸"

// WriteFields prints a heading and fields as aligned columns.
func WriteFields(w io.Writer, heading string, fields []Field) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if heading != "" {
		fmt.Fprintf(tw, "%s\n%s\n", heading, strings.Repeat("─", len([]rune(heading))))
	}
	for _, fld := range fields {
		mark := " "
		if fld.Highlight {
			mark = Highlight
		}
		fmt.Fprintf(tw, "%s %s\t%s\n", mark, fld.Label, fld.String())
	}
	return tw.Flush()
}
