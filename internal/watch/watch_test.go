package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-avtoolbox/internal/watch"
)

// Notes:
// - These tests touch the real filesystem through fsnotify. Timeouts are
//   generous; the debounce is short.

func startWatch(t *testing.T, target string) (<-chan string, func() error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- watch.Watch(ctx, target, watch.Options{Debounce: 20 * time.Millisecond}, func(p string) {
			changes <- p
		})
	}()
	// Give the watcher time to register before the first write.
	time.Sleep(100 * time.Millisecond)

	stop := func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(2 * time.Second):
			t.Fatal("Watch did not return after cancel")
			return nil
		}
	}
	return changes, stop
}

func waitChange(t *testing.T, changes <-chan string) string {
	t.Helper()
	select {
	case p := <-changes:
		return p
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
		return ""
	}
}

// ---------------------------------------------------------------------------
// TestWatch - file and directory targets
// ---------------------------------------------------------------------------

func TestWatch_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	post := filepath.Join(dir, "post.md")
	if err := os.WriteFile(post, []byte("## One"), 0o600); err != nil {
		t.Fatal(err)
	}

	changes, stop := startWatch(t, post)

	if err := os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(post, []byte("## Two"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := waitChange(t, changes)
	if filepath.Base(got) != "post.md" {
		t.Errorf("changed path = %q, want post.md", got)
	}
	if err := stop(); err != nil {
		t.Errorf("Watch returned %v after cancel, want nil", err)
	}
}

func TestWatch_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	changes, stop := startWatch(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "new.md"), []byte("## New"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := waitChange(t, changes)
	if filepath.Base(got) != "new.md" {
		t.Errorf("changed path = %q, want new.md", got)
	}
	if err := stop(); err != nil {
		t.Errorf("Watch returned %v after cancel, want nil", err)
	}
}

func TestWatch_MissingTarget(t *testing.T) {
	t.Parallel()

	err := watch.Watch(context.Background(), filepath.Join(t.TempDir(), "missing.md"), watch.Options{}, func(string) {})
	if !errors.Is(err, watch.ErrWatch) {
		t.Errorf("error = %v, want ErrWatch", err)
	}
}
