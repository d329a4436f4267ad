package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alnah/go-avtoolbox/internal/catalog"
	"github.com/alnah/go-avtoolbox/internal/hints"
)

// toolSummary is the JSON form of a listed tool.
type toolSummary struct {
	Slug     string           `json:"slug"`
	Short    string           `json:"short"`
	Name     string           `json:"name"`
	Tagline  string           `json:"tagline"`
	Category catalog.Category `json:"category"`
}

// runTools lists tools, or describes the tool named by the first argument.
func runTools(_ context.Context, args []string, env *Environment) error {
	var f toolsFlags
	fs := newToolsFlagSet(&f)
	if err := parseFlagSet(fs, args, env.Stderr, printToolsUsage); err != nil {
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

	if fs.NArg() > 0 {
		slug := fs.Arg(0)
		tool, err := cat.ToolBySlug(slug)
		if err != nil {
			return fmt.Errorf("%w%s", err, hints.ForUnknownTool(slug, catalog.ShortSlugs()))
		}
		if f.json {
			return writeJSON(env.Stdout, tool)
		}
		printTool(env.Stdout, cat, tool)
		return nil
	}

	tools := cat.Tools()
	if f.category != "" {
		c, err := catalog.ParseCategory(f.category)
		if err != nil {
			return err
		}
		tools = cat.ToolsByCategory(c)
	}

	if f.json {
		out := make([]toolSummary, len(tools))
		for i, t := range tools {
			out[i] = toolSummary{
				Slug:     t.Slug(),
				Short:    shortSlug(t.ID),
				Name:     t.Name,
				Tagline:  t.Tagline,
				Category: t.Category,
			}
		}
		return writeJSON(env.Stdout, out)
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tNAME\tCATEGORY\tTAGLINE")
	for _, t := range tools {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortSlug(t.ID), t.Name, t.Category, t.Tagline)
	}
	return tw.Flush()
}

// shortSlug returns the suffix-free slug accepted by calc.
func shortSlug(id catalog.ToolID) string {
	if !id.Valid() {
		return ""
	}
	return catalog.ShortSlugs()[int(id)-1]
}

// printTool prints a tool page: description, features, guide and FAQ.
func printTool(w io.Writer, cat *catalog.Catalog, t catalog.Tool) {
	fmt.Fprintf(w, "%s %s\n", t.Icon.Glyph(), t.Name)
	fmt.Fprintln(w, t.Tagline)
	fmt.Fprintln(w)
	if t.Description != "" {
		fmt.Fprintln(w, t.Description)
		fmt.Fprintln(w)
	}
	if info, ok := cat.Category(t.Category); ok {
		fmt.Fprintf(w, "Category: %s\n", info.Label)
	}
	fmt.Fprintf(w, "Run:      avtoolbox calc %s\n", shortSlug(t.ID))

	printList(w, "Features", t.Features)
	printList(w, "Use cases", t.UseCases)

	if len(t.HowTo) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "How to use:")
		for _, s := range t.HowTo {
			fmt.Fprintf(w, "  %d. %s: %s\n", s.Number, s.Title, s.Description)
		}
	}

	if len(t.FAQ) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "FAQ:")
		for _, q := range t.FAQ {
			fmt.Fprintf(w, "  Q: %s\n  A: %s\n", q.Question, q.Answer)
		}
	}

	if related := cat.Related(t.ID); len(related) > 0 {
		names := make([]string, len(related))
		for i, r := range related {
			names[i] = shortSlug(r.ID)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Related: %s\n", strings.Join(names, ", "))
	}
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}
