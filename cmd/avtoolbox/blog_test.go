package main

// Notes:
// - Watch: the filesystem watcher is swapped for a fake that fires one
//   change, so rebuild-on-save is tested without timing.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-avtoolbox/internal/watch"
)

const safeAreasPost = "broadcast-safe-areas-explained"

// ---------------------------------------------------------------------------
// TestRunBlogList - Post listing
// ---------------------------------------------------------------------------

func TestRunBlogList(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if code := env.run("blog", "list"); code != ExitSuccess {
		t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(env.stdout.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want header plus 10 posts", len(lines))
	}
	assertContains(t, "header", lines[0], "SLUG", "DATE", "TOOL", "TITLE")
	assertContains(t, "newest post", lines[1], "ultimate-guide-streaming-bitrate", "2026-02-20", "bitrate")
}

func TestRunBlogList_ToolJSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if code := env.run("blog", "ls", "--tool", "safe-area", "--json"); code != ExitSuccess {
		t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
	}

	var got []struct {
		Slug string `json:"slug"`
		Tool string `json:"tool"`
	}
	if err := json.Unmarshal(env.stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Slug != safeAreasPost || got[0].Tool != "safe-area-overlay" {
		t.Errorf("posts = %+v, want only %s", got, safeAreasPost)
	}
}

// ---------------------------------------------------------------------------
// TestRunBlogRender - Output modes
// ---------------------------------------------------------------------------

func TestRunBlogRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wants   []string
		rejects []string
	}{
		{
			name: "plain text by default",
			args: []string{"blog", "render", safeAreasPost},
			wants: []string{
				"Broadcast Safe Areas Explained: Title-Safe vs Action-Safe\n===",
				"What Are Safe Areas?\n---",
				"Action-Safe (90% of frame)\n...",
			},
			rejects: []string{"<h2", "## "},
		},
		{
			name:    "fragment",
			args:    []string{"blog", "render", safeAreasPost, "--fragment"},
			wants:   []string{"<h2", "What Are Safe Areas?", "<h3"},
			rejects: []string{"<!DOCTYPE html>"},
		},
		{
			name:  "full page",
			args:  []string{"blog", "render", safeAreasPost, "--html"},
			wants: []string{"<!DOCTYPE html>", "<article", "Broadcast Safe Areas Explained"},
		},
		{
			name: "outline",
			args: []string{"blog", "render", safeAreasPost, "--outline"},
			wants: []string{
				"1. What Are Safe Areas?\n",
				"   1.1 Action-Safe (90% of frame)\n",
				"   1.2 Title-Safe (80% of frame)\n",
				"2. Why Safe Areas Still Matter in 2026\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			if code := env.run(tt.args...); code != ExitSuccess {
				t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
			}
			out := env.stdout.String()
			assertContains(t, "stdout", out, tt.wants...)
			for _, r := range tt.rejects {
				if strings.Contains(out, r) {
					t.Errorf("stdout should not contain %q", r)
				}
			}
		})
	}
}

func TestRunBlogRender_OutputFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "site", "post.html")
	env := newTestEnv(t)
	if code := env.run("blog", "render", safeAreasPost, "-o", out); code != ExitSuccess {
		t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	assertContains(t, "file", string(data), "<!DOCTYPE html>", "What Are Safe Areas?")
	assertContains(t, "stderr", env.stderr.String(), "wrote "+out)
}

func TestRunBlogRender_MarkdownFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "notes.md", "---\ntitle: Rig Notes\ntool: cable-length\n---\n\n## Cabling\n\nRun **SDI** past 15m.\n")

	env := newTestEnv(t)
	if code := env.run("blog", "render", src); code != ExitSuccess {
		t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
	}
	out := env.stdout.String()
	assertContains(t, "stdout", out, "Rig Notes\n=========", "Cabling\n-------", "Run SDI past 15m.")
	if strings.Contains(out, "title:") {
		t.Errorf("front matter leaked into output:\n%s", out)
	}
}

func TestRunBlogRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "missing slug",
			args:       []string{"blog", "render"},
			wantCode:   ExitUsage,
			wantStderr: "requires one post slug",
		},
		{
			name:       "post typo suggests slug",
			args:       []string{"blog", "render", "reduce-stream-latncy"},
			wantCode:   ExitUsage,
			wantStderr: "did you mean reduce-stream-latency?",
		},
		{
			name:       "exclusive html and fragment",
			args:       []string{"blog", "render", safeAreasPost, "--html", "--fragment"},
			wantCode:   ExitUsage,
			wantStderr: "exclusive",
		},
		{
			name:       "watch without output",
			args:       []string{"blog", "render", safeAreasPost, "--watch"},
			wantCode:   ExitUsage,
			wantStderr: "--watch requires --output",
		},
		{
			name:       "unknown style",
			args:       []string{"blog", "render", safeAreasPost, "--style", "neon", "--html"},
			wantCode:   ExitUsage,
			wantStderr: "neon",
		},
		{
			name:       "unknown subcommand",
			args:       []string{"blog", "publish"},
			wantCode:   ExitUsage,
			wantStderr: "blog publish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			if code := env.run(tt.args...); code != tt.wantCode {
				t.Errorf("exit = %d, want %d", code, tt.wantCode)
			}
			assertContains(t, "stderr", env.stderr.String(), tt.wantStderr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunBlogRender_Watch - Rebuild on change
// ---------------------------------------------------------------------------

func TestRunBlogRender_Watch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "draft.md", "## First\n")
	out := filepath.Join(dir, "draft.html")

	env := newTestEnv(t)
	var watched string
	env.Watch = func(_ context.Context, target string, _ watch.Options, onChange func(string)) error {
		watched = target
		if err := os.WriteFile(src, []byte("## Second\n"), 0o644); err != nil {
			t.Errorf("rewrite source: %v", err)
		}
		onChange(src)
		return nil
	}

	if code := env.run("blog", "render", src, "-o", out, "--watch", "--quiet"); code != ExitSuccess {
		t.Fatalf("exit = %d, want 0\nstderr: %s", code, env.stderr.String())
	}
	if watched != src {
		t.Errorf("watched = %q, want %q", watched, src)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "Second") {
		t.Errorf("output was not rebuilt:\n%s", data)
	}
}
