package graphics

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"math"
	"strings"
	"text/template"

	"github.com/alnah/go-avtoolbox/internal/formula"
)

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("graphics").
		Funcs(template.FuncMap{"xml": escapeXML}).
		ParseFS(templateFS, "templates/*.svg.tmpl"),
)

// Lower third canvas size.
const (
	LowerThirdWidth  = 800
	LowerThirdHeight = 200
)

// Image is a rendered SVG document and its pixel size.
type Image struct {
	Width  int
	Height int
	SVG    []byte
}

// LowerThird draws r with its template at 800x200.
func LowerThird(r formula.LowerThirdResult) (Image, error) {
	name := r.Style.String() + ".svg.tmpl"
	if templates.Lookup(name) == nil {
		return Image{}, fmt.Errorf("%w: no template for style %q", ErrRender, r.Style)
	}
	data := struct {
		formula.LowerThirdResult
		Width, Height int
	}{r, LowerThirdWidth, LowerThirdHeight}

	svg, err := execute(name, data)
	if err != nil {
		return Image{}, err
	}
	return Image{Width: LowerThirdWidth, Height: LowerThirdHeight, SVG: svg}, nil
}

// safeAreaView holds the frame geometry in template-friendly form.
type safeAreaView struct {
	Width, Height int
	Action, Title formula.Rect
	ActionLabel   string
	TitleLabel    string
	CenterX       int
	CenterY       int
	Cross         int
	Stroke        int
	FontSize      int
	LabelPad      int
}

// SafeArea draws the frame of r with its action and title zones, a
// center crosshair and zone labels.
func SafeArea(r formula.SafeAreaResult) (Image, error) {
	w, h := r.Frame.Width, r.Frame.Height
	if w <= 0 || h <= 0 {
		return Image{}, fmt.Errorf("%w: %dx%d", ErrFrameSize, w, h)
	}

	short := min(w, h)
	view := safeAreaView{
		Width:       w,
		Height:      h,
		Action:      r.Action,
		Title:       r.Title,
		ActionLabel: zoneLabel("ACTION SAFE", r.Action, r.Frame),
		TitleLabel:  zoneLabel("TITLE SAFE", r.Title, r.Frame),
		CenterX:     w / 2,
		CenterY:     h / 2,
		Cross:       max(short/20, 8),
		Stroke:      max(short/360, 1),
		FontSize:    max(short/40, 10),
	}
	view.LabelPad = view.FontSize / 2

	svg, err := execute("safearea.svg.tmpl", view)
	if err != nil {
		return Image{}, err
	}
	return Image{Width: w, Height: h, SVG: svg}, nil
}

// zoneLabel names a zone with its share of the frame width,
// e.g. "ACTION SAFE 90% · 1728x972".
func zoneLabel(name string, zone, frame formula.Rect) string {
	pct := math.Round(float64(zone.Width) / float64(frame.Width) * 100)
	return fmt.Sprintf("%s %d%% · %s", name, int(pct), zone)
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
