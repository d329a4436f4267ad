package catalog

import (
	"fmt"
	"time"
)

// CategoryInfo describes a category.
type CategoryInfo struct {
	ID          Category
	Label       string
	Description string
}

// FAQ is a question and answer shown on a tool page.
type FAQ struct {
	Question string
	Answer   string
}

// Step is one step of a tool's how-to guide.
type Step struct {
	Number      int
	Title       string
	Description string
}

// Tool is a registry entry.
type Tool struct {
	ID          ToolID
	Name        string
	Tagline     string
	Description string
	Category    Category
	Icon        Icon
	Color       string
	Features    []string
	UseCases    []string
	Keywords    []string
	FAQ         []FAQ
	HowTo       []Step
	Related     []ToolID
}

// Slug returns the tool's URL slug.
func (t Tool) Slug() string { return t.ID.String() }

// Post is a blog article.
type Post struct {
	Slug        string
	Title       string
	Excerpt     string
	Tool        ToolID
	Category    string
	PublishedAt time.Time
	ReadTime    string
	Author      string
	Tags        []string
	Content     string
}

// Catalog is an immutable, validated registry. It is safe for concurrent use.
type Catalog struct {
	categories []CategoryInfo
	tools      map[ToolID]Tool
	posts      []Post
	postIndex  map[string]int
}

// Categories returns categories in display order.
func (c *Catalog) Categories() []CategoryInfo {
	return append([]CategoryInfo(nil), c.categories...)
}

// Category returns one category.
func (c *Catalog) Category(id Category) (CategoryInfo, bool) {
	for _, info := range c.categories {
		if info.ID == id {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// Tools returns every tool in ToolIDs order.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, 0, len(ToolIDs))
	for _, id := range ToolIDs {
		out = append(out, c.tools[id])
	}
	return out
}

// Tool returns the entry for id.
func (c *Catalog) Tool(id ToolID) (Tool, error) {
	t, ok := c.tools[id]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	return t, nil
}

// ToolBySlug resolves a full or short slug to its entry.
func (c *Catalog) ToolBySlug(slug string) (Tool, error) {
	id, err := ParseToolID(slug)
	if err != nil {
		return Tool{}, err
	}
	return c.Tool(id)
}

// ToolsByCategory returns the tools in one category.
func (c *Catalog) ToolsByCategory(cat Category) []Tool {
	var out []Tool
	for _, id := range ToolIDs {
		if t := c.tools[id]; t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// Related returns the tools linked from id's page.
func (c *Catalog) Related(id ToolID) []Tool {
	t, ok := c.tools[id]
	if !ok {
		return nil
	}
	out := make([]Tool, 0, len(t.Related))
	for _, rel := range t.Related {
		out = append(out, c.tools[rel])
	}
	return out
}

// Posts returns every post, newest first.
func (c *Catalog) Posts() []Post {
	return append([]Post(nil), c.posts...)
}

// Post returns the post with the given slug.
func (c *Catalog) Post(slug string) (Post, error) {
	i, ok := c.postIndex[slug]
	if !ok {
		return Post{}, fmt.Errorf("%w: %q", ErrPostNotFound, slug)
	}
	return c.posts[i], nil
}

// PostsByTool returns the posts about one tool, newest first.
func (c *Catalog) PostsByTool(id ToolID) []Post {
	var out []Post
	for _, p := range c.posts {
		if p.Tool == id {
			out = append(out, p)
		}
	}
	return out
}
