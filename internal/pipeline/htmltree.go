package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Anchor is a heading that received, or already had, an id.
type Anchor struct {
	Level int
	ID    string
	Text  string
}

// AnchorHeadings gives every h2 and h3 in the fragment an id derived from
// its text, keeping ids that are already present. Duplicate ids get a
// numeric suffix. It returns the rewritten fragment and the anchors in
// document order.
func AnchorHeadings(fragment string) (string, []Anchor, error) {
	root, err := parseFragment(fragment)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	seen := make(map[string]int)
	var anchors []Anchor
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || (n.DataAtom != atom.H2 && n.DataAtom != atom.H3) {
			return
		}
		text := strings.TrimSpace(textContent(n))
		id := attr(n, "id")
		if id == "" {
			id = slugify(text)
			if id == "" {
				id = "section"
			}
			if count := seen[id]; count > 0 {
				id += "-" + strconv.Itoa(count)
			}
			n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: id})
		}
		seen[id]++
		level := 2
		if n.DataAtom == atom.H3 {
			level = 3
		}
		anchors = append(anchors, Anchor{Level: level, ID: id, Text: text})
	})

	out, err := renderChildren(root)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return out, anchors, nil
}

// RewriteRelativePaths turns relative img src and a href values into
// file:// URLs under sourceDir, so a page written elsewhere still finds
// the article's images. URLs, anchors, absolute paths and paths leaving
// sourceDir are kept. An empty sourceDir returns the fragment unchanged.
func RewriteRelativePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}
	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", absDir)
		case atom.A:
			rewriteAttr(n, "href", absDir)
		}
	})
	return renderChildren(root)
}

func rewriteAttr(n *html.Node, key, dir string) {
	for i, a := range n.Attr {
		if a.Key != key || !isRelativePath(a.Val) {
			continue
		}
		abs := filepath.Join(dir, filepath.FromSlash(a.Val))
		if !isPathUnderDir(abs, dir) {
			continue
		}
		n.Attr[i].Val = (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	}
}

func isRelativePath(p string) bool {
	if p == "" || strings.HasPrefix(p, "#") || strings.HasPrefix(p, "//") || filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return false
	}
	if u, err := url.Parse(p); err == nil && u.Scheme != "" {
		return false
	}
	return true
}

func isPathUnderDir(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// parseFragment parses HTML in a <body> context under a document node.
func parseFragment(fragment string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

func renderChildren(root *html.Node) (string, error) {
	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// slugify lowercases s, keeps letters and digits, and joins words with
// single hyphens.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		case r == ' ' || r == '-' || r == '_':
			dash = true
		}
	}
	return b.String()
}
