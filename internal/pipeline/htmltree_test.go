package pipeline

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestAnchorHeadings - heading ids
// ---------------------------------------------------------------------------

func TestAnchorHeadings(t *testing.T) {
	t.Parallel()

	in := "<h2>Why Latency Matters</h2>\n<p>x</p>\n<h3>Encoder <em>Delay</em></h3>\n" +
		"<h2 id=\"custom\">Kept</h2>\n<h2>Why Latency Matters</h2>\n<h4>Ignored</h4>\n"

	out, anchors, err := AnchorHeadings(in)
	if err != nil {
		t.Fatalf("AnchorHeadings() error: %v", err)
	}

	want := []Anchor{
		{Level: 2, ID: "why-latency-matters", Text: "Why Latency Matters"},
		{Level: 3, ID: "encoder-delay", Text: "Encoder Delay"},
		{Level: 2, ID: "custom", Text: "Kept"},
		{Level: 2, ID: "why-latency-matters-1", Text: "Why Latency Matters"},
	}
	if diff := cmp.Diff(want, anchors); diff != "" {
		t.Errorf("anchors mismatch (-want +got):\n%s", diff)
	}
	for _, s := range []string{
		`<h2 id="why-latency-matters">`,
		`<h3 id="encoder-delay">Encoder <em>Delay</em></h3>`,
		`<h2 id="custom">Kept</h2>`,
		`<h2 id="why-latency-matters-1">`,
		`<h4>Ignored</h4>`,
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HDMI vs. SDI: Which?": "hdmi-vs-sdi-which",
		"  1080p60 -- 4K30 ":   "1080p60-4k30",
		"snake_case words":     "snake-case-words",
		"!!!":                  "",
	}
	for in, want := range tests {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRewriteRelativePaths - file URLs for local assets
// ---------------------------------------------------------------------------

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := `<p><img src="img/rack.png"/><img src="https://cdn.example.com/a.png"/>` +
		`<a href="#setup">jump</a><a href="../secret.md">up</a><a href="notes.md">notes</a>` +
		`<img src="data:image/png;base64,AAAA"/><a href="/tools/bitrate">site</a></p>`

	out, err := RewriteRelativePaths(in, dir)
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error: %v", err)
	}

	wantRewritten := []string{
		"file://" + filepath.ToSlash(filepath.Join(dir, "img", "rack.png")),
		"file://" + filepath.ToSlash(filepath.Join(dir, "notes.md")),
	}
	for _, s := range wantRewritten {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	for _, kept := range []string{
		`src="https://cdn.example.com/a.png"`,
		`href="#setup"`,
		`href="../secret.md"`,
		`src="data:image/png;base64,AAAA"`,
		`href="/tools/bitrate"`,
	} {
		if !strings.Contains(out, kept) {
			t.Errorf("output should keep %q:\n%s", kept, out)
		}
	}
}

func TestRewriteRelativePaths_NoDir(t *testing.T) {
	t.Parallel()

	in := `<img src="a.png">`
	out, err := RewriteRelativePaths(in, "")
	if err != nil || out != in {
		t.Errorf("RewriteRelativePaths(no dir) = %q, %v; want input unchanged", out, err)
	}
}
