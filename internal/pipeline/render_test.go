package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseEngine - engine names
// ---------------------------------------------------------------------------

func TestParseEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Engine
		wantErr bool
	}{
		{in: "", want: EngineLite},
		{in: "lite", want: EngineLite},
		{in: " GFM ", want: EngineGFM},
		{in: "pandoc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEngine(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEngine) {
					t.Fatalf("error = %v, want ErrUnknownEngine", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseEngine(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	if r, err := NewRenderer(EngineLite); err != nil {
		t.Errorf("lite: %v", err)
	} else if _, ok := r.(*LiteRenderer); !ok {
		t.Errorf("lite renderer is %T", r)
	}
	if r, err := NewRenderer(EngineGFM); err != nil {
		t.Errorf("gfm: %v", err)
	} else if _, ok := r.(*GoldmarkRenderer); !ok {
		t.Errorf("gfm renderer is %T", r)
	}
	if _, err := NewRenderer("asciidoc"); !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("unknown engine error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestLiteRenderer - constrained markup
// ---------------------------------------------------------------------------

func TestLiteRenderer(t *testing.T) {
	t.Parallel()

	got, err := (&LiteRenderer{}).Render(context.Background(), "## Setup\r\n\r\n- **Bold** step\r\n- <b>raw</b>\r\n")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for _, want := range []string{
		"<h2>Setup</h2>",
		"<ul>",
		"<li><strong>Bold</strong> step</li>",
		"<li>&lt;b&gt;raw&lt;/b&gt;</li>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderers_Errors(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	for _, r := range []Renderer{&LiteRenderer{}, NewGoldmarkRenderer()} {
		if _, err := r.Render(context.Background(), " \n\t\n"); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("%T blank content error = %v, want ErrEmptyContent", r, err)
		}
		if _, err := r.Render(cancelled, "## x"); !errors.Is(err, context.Canceled) {
			t.Errorf("%T cancelled error = %v, want context.Canceled", r, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkRenderer - full markdown
// ---------------------------------------------------------------------------

func TestGoldmarkRenderer(t *testing.T) {
	t.Parallel()

	src := "# Bitrate Guide\n\n" +
		"| Resolution | Kbps |\n|---|---|\n| 1080p | 6000 |\n\n" +
		"Keep ==headroom== for spikes.[^1]\n\n" +
		"```go\nfmt.Println(\"ok\")\n```\n\n" +
		"[^1]: Roughly 30 percent.\n"

	got, err := NewGoldmarkRenderer().Render(context.Background(), src)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for _, want := range []string{
		`<h1 id="bitrate-guide">Bitrate Guide</h1>`,
		"<table>",
		"<mark>headroom</mark>",
		`class="chroma"`,
		`class="footnotes"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<!DOCTYPE") {
		t.Error("renderer should return a fragment")
	}
}

// ---------------------------------------------------------------------------
// TestNormalize - line endings and blank runs
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "crlf", in: "a\r\nb", want: "a\nb"},
		{name: "lone cr", in: "a\rb", want: "a\nb"},
		{name: "blank run", in: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "unchanged", in: "a\n\nb", want: "a\n\nb"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestHighlightMarks(t *testing.T) {
	t.Parallel()

	marked := markHighlights("a ==b== c ==d==")
	if got := convertMarkPlaceholders(marked); got != "a <mark>b</mark> c <mark>d</mark>" {
		t.Errorf("round trip = %q", got)
	}
}
