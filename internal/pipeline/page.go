package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/alnah/go-avtoolbox/internal/assets"
)

// RelatedTool is the call-to-action card shown under an article.
type RelatedTool struct {
	Name    string
	Tagline string
	Slug    string
	Glyph   string
	Color   string
}

// PageData is everything a page shows besides the style sheet.
type PageData struct {
	Title    string
	Excerpt  string
	Category string
	Date     string // already formatted
	Author   string
	ReadTime string
	Tags     []string
	Body     string // rendered HTML fragment
	Related  *RelatedTool
	TOCTitle string // non-empty adds a table of contents
}

// pageView is what the page template receives.
type pageView struct {
	PageData
	Body    template.HTML
	TOC     template.HTML
	Related template.HTML
}

// PageBuilder assembles standalone HTML documents from a template set.
type PageBuilder struct {
	page    *template.Template
	related *template.Template
}

// NewPageBuilder parses the templates in ts.
func NewPageBuilder(ts *assets.TemplateSet) (*PageBuilder, error) {
	page, err := template.New("page").Parse(ts.Page)
	if err != nil {
		return nil, fmt.Errorf("%w: %s page: %v", ErrTemplateParse, ts.Name, err)
	}
	related, err := template.New("related").Parse(ts.Related)
	if err != nil {
		return nil, fmt.Errorf("%w: %s related: %v", ErrTemplateParse, ts.Name, err)
	}
	return &PageBuilder{page: page, related: related}, nil
}

// Build renders a document for d with css injected into its head. Headings
// in the body receive anchor ids.
func (b *PageBuilder) Build(ctx context.Context, d PageData, css string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, anchors, err := AnchorHeadings(d.Body)
	if err != nil {
		return "", err
	}
	view := pageView{PageData: d, Body: template.HTML(body)} // #nosec G203 -- produced by our renderers
	if d.TOCTitle != "" {
		view.TOC = template.HTML(TOC(anchors, d.TOCTitle)) // #nosec G203 -- text is escaped by TOC
	}
	if d.Related != nil {
		var buf bytes.Buffer
		if err := b.related.Execute(&buf, d.Related); err != nil {
			return "", fmt.Errorf("%w: related: %v", ErrPageRender, err)
		}
		view.Related = template.HTML(buf.String()) // #nosec G203 -- html/template output
	}

	var buf bytes.Buffer
	if err := b.page.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return InjectCSS(ctx, buf.String(), css), nil
}
