package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewDirLoader - directory checks
// ---------------------------------------------------------------------------

func TestNewDirLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid directory", path: dir},
		{name: "empty path", path: "", wantErr: true},
		{name: "missing directory", path: filepath.Join(dir, "nope"), wantErr: true},
		{name: "file", path: file, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewDirLoader(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBasePath) {
					t.Errorf("error = %v, want ErrInvalidBasePath", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loader.Root() == "" {
				t.Error("Root() is empty")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDirLoader - styles and template sets on disk
// ---------------------------------------------------------------------------

func TestDirLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "styles", "stage.css"), "body { color: red; }")

	loader, err := NewDirLoader(dir)
	if err != nil {
		t.Fatalf("NewDirLoader() error: %v", err)
	}

	css, err := loader.LoadStyle("stage")
	if err != nil {
		t.Fatalf("LoadStyle(stage) error: %v", err)
	}
	if css != "body { color: red; }" {
		t.Errorf("css = %q", css)
	}
	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
}

func TestDirLoader_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "templates", "full", "page.html"), "<html>{{.Body}}</html>")
	writeFile(t, filepath.Join(dir, "templates", "full", "related.html"), "<aside>{{.Name}}</aside>")
	writeFile(t, filepath.Join(dir, "templates", "half", "page.html"), "<html></html>")
	if err := os.MkdirAll(filepath.Join(dir, "templates", "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	loader, err := NewDirLoader(dir)
	if err != nil {
		t.Fatalf("NewDirLoader() error: %v", err)
	}

	tests := []struct {
		name    string
		set     string
		wantErr error
	}{
		{name: "complete set", set: "full"},
		{name: "missing related", set: "half", wantErr: ErrIncompleteTemplateSet},
		{name: "empty directory", set: "empty", wantErr: ErrTemplateSetNotFound},
		{name: "absent", set: "ghost", wantErr: ErrTemplateSetNotFound},
		{name: "bad name", set: "../x", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts, err := loader.LoadTemplateSet(tt.set)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ts.Page != "<html>{{.Body}}</html>" || ts.Related != "<aside>{{.Name}}</aside>" {
				t.Errorf("template set = %+v", ts)
			}
		})
	}
}

func TestDirLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "secret.css"), "body{}")

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(outside, "secret.css"), filepath.Join(dir, "styles", "leak.css")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	loader, err := NewDirLoader(dir)
	if err != nil {
		t.Fatalf("NewDirLoader() error: %v", err)
	}
	if _, err := loader.LoadStyle("leak"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(leak) error = %v, want ErrPathTraversal", err)
	}
}
