package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-avtoolbox/internal/markup"
)

// Engine names a markdown renderer.
type Engine string

// Engines.
const (
	EngineLite Engine = "lite"
	EngineGFM  Engine = "gfm"
)

// Engines lists the supported engines.
var Engines = []Engine{EngineLite, EngineGFM}

// ParseEngine accepts "lite" or "gfm". Empty selects lite.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case "", EngineLite:
		return EngineLite, nil
	case EngineGFM:
		return EngineGFM, nil
	}
	return "", fmt.Errorf("%w: %q (want lite or gfm)", ErrUnknownEngine, s)
}

// Renderer converts article markdown into an HTML fragment.
type Renderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// NewRenderer returns the renderer for e.
func NewRenderer(e Engine) (Renderer, error) {
	switch e {
	case EngineLite, "":
		return &LiteRenderer{}, nil
	case EngineGFM:
		return NewGoldmarkRenderer(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, string(e))
}

// LiteRenderer renders the constrained markup dialect of the blog.
type LiteRenderer struct{}

// Render parses content into blocks and writes them as HTML.
func (r *LiteRenderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	return markup.RenderHTML(markup.Parse(content)), nil
}

// GoldmarkRenderer renders full GitHub flavored markdown.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with tables, footnotes,
// heading ids and class-based code highlighting.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts content. Goldmark has no context support, so conversion
// runs on a goroutine and Render returns early when ctx is done.
func (r *GoldmarkRenderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		src := markHighlights(Normalize(content))
		if err := r.md.Convert([]byte(src), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: convertMarkPlaceholders(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

var (
	_ Renderer = (*LiteRenderer)(nil)
	_ Renderer = (*GoldmarkRenderer)(nil)
)
