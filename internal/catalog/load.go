package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-avtoolbox/internal/bind"
	"github.com/alnah/go-avtoolbox/internal/yamlutil"
)

// File layout inside a content tree.
const (
	toolsFile = "tools.yaml"
	postsDir  = "posts"
	dateFmt   = "2006-01-02"
)

type rawCatalog struct {
	Categories []rawCategory `yaml:"categories" validate:"required,dive"`
	Tools      []rawTool     `yaml:"tools" validate:"required,dive"`
}

type rawCategory struct {
	ID          string `yaml:"id" validate:"required"`
	Label       string `yaml:"label" validate:"required"`
	Description string `yaml:"description"`
}

type rawTool struct {
	Slug        string    `yaml:"slug" validate:"required"`
	Name        string    `yaml:"name" validate:"required"`
	Tagline     string    `yaml:"tagline" validate:"required"`
	Description string    `yaml:"description" validate:"required"`
	Category    string    `yaml:"category" validate:"required"`
	Icon        string    `yaml:"icon"`
	Color       string    `yaml:"color" validate:"required,hexcolor"`
	Features    []string  `yaml:"features"`
	UseCases    []string  `yaml:"useCases"`
	Keywords    []string  `yaml:"keywords"`
	FAQ         []rawFAQ  `yaml:"faq" validate:"dive"`
	HowTo       []rawStep `yaml:"howTo" validate:"dive"`
	Related     []string  `yaml:"related"`
}

type rawFAQ struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

type rawStep struct {
	Step        int    `yaml:"step" validate:"min=1"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

type rawPost struct {
	Title       string   `yaml:"title" validate:"required"`
	Excerpt     string   `yaml:"excerpt"`
	Tool        string   `yaml:"tool" validate:"required"`
	Category    string   `yaml:"category"`
	PublishedAt string   `yaml:"publishedAt" validate:"required,datetime=2006-01-02"`
	ReadTime    string   `yaml:"readTime"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
}

type loadOptions struct {
	postsFS fs.FS
	logger  zerolog.Logger
}

// Option configures Load.
type Option func(*loadOptions)

// WithPostsFS reads posts from the root of fsys instead of the content
// tree's posts/ directory.
func WithPostsFS(fsys fs.FS) Option {
	return func(o *loadOptions) { o.postsFS = fsys }
}

// WithLogger sets the logger for load warnings. The default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(o *loadOptions) { o.logger = l }
}

// Load reads and validates a content tree holding tools.yaml and posts/.
// All consistency problems are reported together, each wrapping
// ErrInvalidCatalog.
func Load(fsys fs.FS, opts ...Option) (*Catalog, error) {
	o := loadOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := fs.ReadFile(fsys, toolsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogRead, err)
	}
	var raw rawCatalog
	if err := yamlutil.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, toolsFile, err)
	}
	if err := bind.Struct(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, toolsFile, err)
	}

	c := &Catalog{
		tools:     make(map[ToolID]Tool, len(ToolIDs)),
		postIndex: make(map[string]int),
	}
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...)))
	}

	for _, rc := range raw.Categories {
		id, err := ParseCategory(rc.ID)
		if err != nil {
			invalid("category %q is not known", rc.ID)
			continue
		}
		c.categories = append(c.categories, CategoryInfo{ID: id, Label: rc.Label, Description: rc.Description})
	}

	for _, rt := range raw.Tools {
		t, problems := buildTool(rt, o.logger)
		for _, p := range problems {
			invalid("tool %q: %s", rt.Slug, p)
		}
		if !t.ID.Valid() {
			continue
		}
		if _, dup := c.tools[t.ID]; dup {
			invalid("tool %q is described more than once", rt.Slug)
			continue
		}
		c.tools[t.ID] = t
	}
	for _, id := range ToolIDs {
		if _, ok := c.tools[id]; !ok {
			invalid("tool %q is missing", id)
		}
	}
	for _, t := range c.tools {
		if _, ok := c.Category(t.Category); t.Category != 0 && !ok {
			invalid("tool %q: category %q is not declared", t.ID, t.Category)
		}
	}

	pfs, dir := fsys, postsDir
	if o.postsFS != nil {
		pfs, dir = o.postsFS, "."
	}
	posts, err := readPosts(pfs, dir)
	if err != nil {
		return nil, err
	}
	for _, rp := range posts {
		p, problems := buildPost(rp)
		for _, msg := range problems {
			invalid("post %q: %s", rp.slug, msg)
		}
		if len(problems) == 0 {
			c.posts = append(c.posts, p)
		}
	}
	slices.SortFunc(c.posts, func(a, b Post) int {
		if n := b.PublishedAt.Compare(a.PublishedAt); n != 0 {
			return n
		}
		return cmp.Compare(a.Slug, b.Slug)
	})
	for i, p := range c.posts {
		c.postIndex[p.Slug] = i
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	o.logger.Debug().Int("tools", len(c.tools)).Int("posts", len(c.posts)).Msg("catalog loaded")
	return c, nil
}

func buildTool(rt rawTool, logger zerolog.Logger) (Tool, []string) {
	var problems []string

	id, err := ParseToolID(rt.Slug)
	if err != nil || id.String() != rt.Slug {
		return Tool{}, []string{"slug is not a known tool id"}
	}

	cat, err := ParseCategory(rt.Category)
	if err != nil {
		problems = append(problems, fmt.Sprintf("category %q is not known", rt.Category))
	}

	icon, ok := ParseIcon(rt.Icon)
	if !ok {
		logger.Warn().Str("tool", rt.Slug).Str("icon", rt.Icon).Msg("unknown icon, using wrench")
	}

	t := Tool{
		ID:          id,
		Name:        rt.Name,
		Tagline:     rt.Tagline,
		Description: rt.Description,
		Category:    cat,
		Icon:        icon,
		Color:       rt.Color,
		Features:    rt.Features,
		UseCases:    rt.UseCases,
		Keywords:    rt.Keywords,
	}
	for _, f := range rt.FAQ {
		t.FAQ = append(t.FAQ, FAQ{Question: f.Question, Answer: f.Answer})
	}
	for _, s := range rt.HowTo {
		t.HowTo = append(t.HowTo, Step{Number: s.Step, Title: s.Title, Description: s.Description})
	}
	for _, slug := range rt.Related {
		rel, err := ParseToolID(slug)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("related tool %q is not known", slug))
		case rel == id:
			problems = append(problems, "tool lists itself as related")
		default:
			t.Related = append(t.Related, rel)
		}
	}
	return t, problems
}

type postFile struct {
	slug    string
	front   rawPost
	content string
	err     error
}

func readPosts(fsys fs.FS, dir string) ([]postFile, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogRead, err)
	}
	slices.Sort(names)

	out := make([]postFile, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCatalogRead, name, err)
		}
		pf := postFile{slug: strings.TrimSuffix(path.Base(name), ".md")}
		body, err := yamlutil.UnmarshalFrontMatter(data, &pf.front)
		if err != nil {
			pf.err = err
		}
		pf.content = string(body)
		out = append(out, pf)
	}
	return out, nil
}

func buildPost(pf postFile) (Post, []string) {
	if pf.err != nil {
		return Post{}, []string{pf.err.Error()}
	}
	if err := bind.Struct(&pf.front); err != nil {
		return Post{}, []string{err.Error()}
	}

	var problems []string
	tool, err := ParseToolID(pf.front.Tool)
	if err != nil {
		problems = append(problems, fmt.Sprintf("tool %q is not known", pf.front.Tool))
	}
	published, err := time.Parse(dateFmt, pf.front.PublishedAt)
	if err != nil {
		problems = append(problems, fmt.Sprintf("publishedAt %q is not a date", pf.front.PublishedAt))
	}
	if strings.TrimSpace(pf.content) == "" {
		problems = append(problems, "post has no content")
	}

	return Post{
		Slug:        pf.slug,
		Title:       pf.front.Title,
		Excerpt:     pf.front.Excerpt,
		Tool:        tool,
		Category:    pf.front.Category,
		PublishedAt: published,
		ReadTime:    pf.front.ReadTime,
		Author:      pf.front.Author,
		Tags:        pf.front.Tags,
		Content:     pf.content,
	}, problems
}
