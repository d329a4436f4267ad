package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	avtoolbox "github.com/alnah/go-avtoolbox"
	"github.com/alnah/go-avtoolbox/internal/assets"
	"github.com/alnah/go-avtoolbox/internal/catalog"
	"github.com/alnah/go-avtoolbox/internal/config"
	"github.com/alnah/go-avtoolbox/internal/fileutil"
	"github.com/alnah/go-avtoolbox/internal/hints"
	"github.com/alnah/go-avtoolbox/internal/watch"
	"github.com/alnah/go-avtoolbox/internal/yamlutil"
)

// postSummary is the JSON form of a listed post.
type postSummary struct {
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Tool        catalog.ToolID `json:"tool"`
	PublishedAt time.Time      `json:"publishedAt"`
	ReadTime    string         `json:"readTime,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

// runBlog dispatches the list and render subcommands.
func runBlog(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printBlogUsage(env.Stderr)
		return fmt.Errorf("%w: blog requires a subcommand", ErrUsage)
	}
	switch args[0] {
	case "list", "ls":
		return runBlogList(args[1:], env)
	case "render":
		return runBlogRender(ctx, args[1:], env)
	case "-h", "--help":
		printBlogUsage(env.Stdout)
		return nil
	}
	printBlogUsage(env.Stderr)
	return fmt.Errorf("%w: blog %s", ErrUnknownCommand, args[0])
}

func runBlogList(args []string, env *Environment) error {
	var f blogListFlags
	fs := newBlogListFlagSet(&f)
	if err := parseFlagSet(fs, args, env.Stderr, printBlogUsage); err != nil {
		return err
	}
	if err := env.setup(f.common); err != nil {
		return err
	}

	tb, err := env.toolbox()
	if err != nil {
		return err
	}
	defer tb.Close()
	cat := tb.Catalog()

	posts := cat.Posts()
	if f.tool != "" {
		id, err := catalog.ParseToolID(f.tool)
		if err != nil {
			return fmt.Errorf("%w%s", err, hints.ForUnknownTool(f.tool, catalog.ShortSlugs()))
		}
		posts = cat.PostsByTool(id)
	}

	if f.json {
		out := make([]postSummary, len(posts))
		for i, p := range posts {
			out[i] = postSummary{
				Slug:        p.Slug,
				Title:       p.Title,
				Tool:        p.Tool,
				PublishedAt: p.PublishedAt,
				ReadTime:    p.ReadTime,
				Tags:        p.Tags,
			}
		}
		return writeJSON(env.Stdout, out)
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tDATE\tTOOL\tTITLE")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Slug, p.PublishedAt.Format(time.DateOnly), shortSlug(p.Tool), p.Title)
	}
	return tw.Flush()
}

// rendered is an article plus the markdown it came from.
type rendered struct {
	article *avtoolbox.Article
	content string
}

func runBlogRender(ctx context.Context, args []string, env *Environment) error {
	var f blogRenderFlags
	fs := newBlogRenderFlagSet(&f)
	if err := parseFlagSet(fs, args, env.Stderr, printBlogUsage); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		printBlogUsage(env.Stderr)
		return fmt.Errorf("%w: blog render requires one post slug or markdown file", ErrUsage)
	}
	if f.html && f.fragment {
		return fmt.Errorf("%w: --html and --fragment are exclusive", ErrUsage)
	}
	if f.watch && f.output == "" {
		return fmt.Errorf("%w: --watch requires --output", ErrUsage)
	}
	if err := env.setup(f.common); err != nil {
		return err
	}

	src := fs.Arg(0)
	opts := articleOptions(&f, env.Config)

	build := func() error {
		tb, err := env.toolbox()
		if err != nil {
			return err
		}
		defer tb.Close()

		r, err := renderSource(ctx, tb, src, opts)
		if err != nil {
			return err
		}
		return writeArticle(env, &f, r)
	}

	if err := build(); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	target := src
	if !isMarkdownPath(src) {
		target = env.Config.Content.PostsDir
	}
	if target == "" {
		return fmt.Errorf("%w: --watch needs a markdown file or content.postsDir", ErrUsage)
	}

	logger := env.Logger
	logger.Info().Str("target", target).Msg("watching for changes")
	return env.Watch(ctx, target, watch.Options{Logger: &logger}, func(path string) {
		if err := build(); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("rebuild failed")
			return
		}
		logger.Info().Str("path", path).Str("output", f.output).Msg("rebuilt")
	})
}

// articleOptions merges render flags over the blog config.
func articleOptions(f *blogRenderFlags, cfg *config.Config) avtoolbox.ArticleOptions {
	opts := avtoolbox.ArticleOptions{
		Engine:     cfg.Blog.Engine,
		Style:      cfg.Blog.Style,
		Template:   cfg.Blog.Template,
		DateFormat: cfg.Blog.DateFormat,
		NoStyle:    f.noStyle,
		Fragment:   f.fragment || (f.output == "" && !f.html),
	}
	if f.engine != "" {
		opts.Engine = f.engine
	}
	if f.style != "" {
		opts.Style = f.style
	}
	if f.template != "" {
		opts.Template = f.template
	}
	if f.dateFormat != "" {
		opts.DateFormat = f.dateFormat
	}

	tocTitle := cfg.Blog.TOCTitle
	if f.tocTitle != "" {
		tocTitle = f.tocTitle
	}
	if (f.toc || f.tocTitle != "" || cfg.Blog.TOC) && tocTitle != "" {
		opts.TOCTitle = tocTitle
	}
	return opts
}

// renderSource renders a markdown file when src looks like a path, and
// the embedded or configured post of that slug otherwise.
func renderSource(ctx context.Context, tb *avtoolbox.Toolbox, src string, opts avtoolbox.ArticleOptions) (*rendered, error) {
	if isMarkdownPath(src) {
		data, err := os.ReadFile(src) // #nosec G304 -- user-provided input path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		if abs, err := filepath.Abs(src); err == nil {
			opts.SourceDir = filepath.Dir(abs)
		}
		art, err := tb.RenderMarkdown(ctx, string(data), opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		// SplitFrontMatter returns the whole input as body when there is none.
		_, body, _ := yamlutil.SplitFrontMatter(data)
		return &rendered{article: art, content: string(body)}, nil
	}

	art, err := tb.RenderPost(ctx, src, opts)
	if errors.Is(err, avtoolbox.ErrPostNotFound) {
		return nil, fmt.Errorf("%w%s", err, hints.ForPostNotFound(src, postSlugs(tb.Catalog())))
	}
	if errors.Is(err, avtoolbox.ErrStyleNotFound) && !fileutil.IsFilePath(opts.Style) {
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
	}
	if err != nil {
		return nil, err
	}
	post, err := tb.Catalog().Post(src)
	if err != nil {
		return nil, err
	}
	return &rendered{article: art, content: post.Content}, nil
}

// writeArticle prints or saves r according to the output flags.
func writeArticle(env *Environment, f *blogRenderFlags, r *rendered) error {
	switch {
	case f.outline:
		writeOutline(env.Stdout, r.article.Outline)
		return nil
	case f.output != "":
		if err := fileutil.WriteFile(f.output, []byte(r.article.HTML)); err != nil {
			if errors.Is(err, fileutil.ErrOutputDir) {
				return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
			}
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		if !f.common.quiet {
			fmt.Fprintf(env.Stderr, "wrote %s\n", f.output)
		}
		return nil
	case f.html || f.fragment:
		if _, err := fmt.Fprintln(env.Stdout, r.article.HTML); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	return writePlain(env.Stdout, r.article.Title, r.content)
}

// isMarkdownPath reports whether src names a file rather than a slug.
func isMarkdownPath(src string) bool {
	ext := strings.ToLower(filepath.Ext(src))
	return ext == ".md" || ext == ".markdown" || strings.ContainsAny(src, "/\\")
}

func postSlugs(cat *catalog.Catalog) []string {
	posts := cat.Posts()
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}
