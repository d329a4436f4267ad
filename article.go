package avtoolbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-avtoolbox/internal/assets"
	"github.com/alnah/go-avtoolbox/internal/catalog"
	"github.com/alnah/go-avtoolbox/internal/dateutil"
	"github.com/alnah/go-avtoolbox/internal/fileutil"
	"github.com/alnah/go-avtoolbox/internal/markup"
	"github.com/alnah/go-avtoolbox/internal/pipeline"
	"github.com/alnah/go-avtoolbox/internal/yamlutil"
)

// Engine names accepted by ArticleOptions.Engine.
const (
	EngineLite = string(pipeline.EngineLite)
	EngineGFM  = string(pipeline.EngineGFM)
)

// ArticleOptions controls how an article is rendered. The zero value renders
// a full page with the lite engine and the default style.
type ArticleOptions struct {
	Engine     string // "lite" or "gfm", default lite
	Style      string // style name or path to a .css file
	NoStyle    bool   // skip the style sheet
	Template   string // template set name, default "default"
	TOCTitle   string // non-empty adds a table of contents
	DateFormat string // dateutil format, default "long"
	SourceDir  string // resolves relative image and link paths
	Fragment   bool   // return the body HTML only, without the page
}

// Article is a rendered document.
type Article struct {
	Title    string
	HTML     string
	Outline  []markup.Heading
	Related  *catalog.Tool
	Fragment bool
}

// frontMatter is the optional header of a standalone markdown document.
type frontMatter struct {
	Title    string   `yaml:"title"`
	Excerpt  string   `yaml:"excerpt"`
	Tool     string   `yaml:"tool"`
	Category string   `yaml:"category"`
	Date     string   `yaml:"publishedAt"`
	ReadTime string   `yaml:"readTime"`
	Author   string   `yaml:"author"`
	Tags     []string `yaml:"tags"`
}

// RenderPost renders the catalog post with the given slug. The page links
// the tool the post belongs to.
func (t *Toolbox) RenderPost(ctx context.Context, slug string, opts ArticleOptions) (*Article, error) {
	post, err := t.catalog.Post(slug)
	if err != nil {
		return nil, err
	}

	date := ""
	if !post.PublishedAt.IsZero() {
		date, err = dateutil.Format(post.PublishedAt, opts.DateFormat)
		if err != nil {
			return nil, err
		}
	}

	data := pipeline.PageData{
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Category: post.Category,
		Date:     date,
		Author:   post.Author,
		ReadTime: post.ReadTime,
		Tags:     post.Tags,
	}
	var related *catalog.Tool
	if tool, err := t.catalog.Tool(post.Tool); err == nil {
		related = &tool
	}
	return t.render(ctx, post.Content, data, related, opts)
}

// RenderMarkdown renders a standalone document. A leading YAML front matter
// block, when present, supplies the title and metadata; its tool key links
// a related tool.
func (t *Toolbox) RenderMarkdown(ctx context.Context, content string, opts ArticleOptions) (*Article, error) {
	front, body, err := yamlutil.SplitFrontMatter([]byte(content))
	if err != nil && !errors.Is(err, yamlutil.ErrNoFrontMatter) {
		return nil, fmt.Errorf("front matter: %w", err)
	}

	var fm frontMatter
	if len(strings.TrimSpace(string(front))) > 0 {
		if err := yamlutil.Unmarshal(front, &fm); err != nil {
			return nil, fmt.Errorf("front matter: %w", err)
		}
	}

	var related *catalog.Tool
	if fm.Tool != "" {
		tool, err := t.catalog.ToolBySlug(fm.Tool)
		if err != nil {
			return nil, err
		}
		related = &tool
	}

	data := pipeline.PageData{
		Title:    fm.Title,
		Excerpt:  fm.Excerpt,
		Category: fm.Category,
		Date:     fm.Date,
		Author:   fm.Author,
		ReadTime: fm.ReadTime,
		Tags:     fm.Tags,
	}
	if data.Title == "" {
		data.Title = firstHeading(string(body))
	}
	return t.render(ctx, string(body), data, related, opts)
}

func (t *Toolbox) render(ctx context.Context, content string, data pipeline.PageData, related *catalog.Tool, opts ArticleOptions) (*Article, error) {
	engine, err := pipeline.ParseEngine(opts.Engine)
	if err != nil {
		return nil, err
	}
	renderer, err := pipeline.NewRenderer(engine)
	if err != nil {
		return nil, err
	}

	body, err := renderer.Render(ctx, content)
	if err != nil {
		return nil, err
	}
	body, err = pipeline.RewriteRelativePaths(body, opts.SourceDir)
	if err != nil {
		return nil, err
	}

	article := &Article{
		Title:    data.Title,
		Outline:  markup.Headings(markup.Parse(content)),
		Related:  related,
		Fragment: opts.Fragment,
	}
	t.logger.Debug().
		Str("engine", string(engine)).
		Str("title", data.Title).
		Int("headings", len(article.Outline)).
		Msg("article rendered")

	if opts.Fragment {
		article.HTML = body
		return article, nil
	}

	css, err := t.loadStyle(opts)
	if err != nil {
		return nil, err
	}
	name := opts.Template
	if name == "" {
		name = assets.DefaultTemplateSetName
	}
	ts, err := t.assets.LoadTemplateSet(name)
	if err != nil {
		return nil, err
	}
	builder, err := pipeline.NewPageBuilder(ts)
	if err != nil {
		return nil, err
	}

	data.Body = body
	data.TOCTitle = opts.TOCTitle
	if related != nil {
		data.Related = &pipeline.RelatedTool{
			Name:    related.Name,
			Tagline: related.Tagline,
			Slug:    related.Slug(),
			Glyph:   related.Icon.Glyph(),
			Color:   related.Color,
		}
	}

	article.HTML, err = builder.Build(ctx, data, css)
	if err != nil {
		return nil, err
	}
	return article, nil
}

// loadStyle resolves opts.Style as a file path or an asset name.
func (t *Toolbox) loadStyle(opts ArticleOptions) (string, error) {
	if opts.NoStyle {
		return "", nil
	}
	if opts.Style != "" && fileutil.IsFilePath(opts.Style) {
		css, err := os.ReadFile(opts.Style) // #nosec G304 -- user-provided style path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStyleNotFound, err)
		}
		return string(css), nil
	}
	name := opts.Style
	if name == "" {
		name = assets.DefaultStyleName
	}
	return t.assets.LoadStyle(name)
}

// firstHeading returns the text of the first heading, if any.
func firstHeading(content string) string {
	hs := markup.Headings(markup.Parse(content))
	if len(hs) == 0 {
		return ""
	}
	return markup.PlainText(markup.ParseInline(hs[0].Text))
}
