package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	avtoolbox "github.com/alnah/go-avtoolbox"
	"github.com/alnah/go-avtoolbox/internal/config"
	"github.com/alnah/go-avtoolbox/internal/countdown"
	"github.com/alnah/go-avtoolbox/internal/watch"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and fakes
// ---------------------------------------------------------------------------

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment with buffered output and only the
// given variables visible.
func newTestEnv(t *testing.T, vars ...string) *testEnv {
	t.Helper()

	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:        func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
		Stdout:     &stdout,
		Stderr:     &stderr,
		Environ:    func() []string { return vars },
		Config:     config.DefaultConfig(),
		Logger:     zerolog.Nop(),
		NewToolbox: avtoolbox.New,
		NewTicker:  func(time.Duration) countdown.Ticker { return newInstantTicker() },
		Watch: func(context.Context, string, watch.Options, func(string)) error {
			t.Error("unexpected call to Watch")
			return nil
		},
	}
	return &testEnv{Environment: env, stdout: &stdout, stderr: &stderr}
}

// run executes args through runMain with the program name prepended.
func (e *testEnv) run(args ...string) int {
	return runMain(append([]string{"avtoolbox"}, args...), e.Environment)
}

// instantTicker fires on every receive, so countdowns finish at once.
type instantTicker struct {
	ch      chan time.Time
	stopped bool
}

func newInstantTicker() *instantTicker {
	ch := make(chan time.Time)
	close(ch)
	return &instantTicker{ch: ch}
}

func (f *instantTicker) C() <-chan time.Time { return f.ch }
func (f *instantTicker) Stop()               { f.stopped = true }

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// writeConfig writes a config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "avtoolbox.yaml", content)
}

// assertContains fails for every want missing from got.
func assertContains(t *testing.T, label, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("%s should contain %q, got:\n%s", label, want, got)
		}
	}
}
