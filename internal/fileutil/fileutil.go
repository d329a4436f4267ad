// Package fileutil holds the small file helpers shared by the exporters and
// the command line.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for files and directories the toolbox writes.
const (
	FilePerm = 0o644
	DirPerm  = 0o755
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrOutputDir              = errors.New("cannot create output directory")
)

// WriteTempFile writes content to a new "avtoolbox-*.<extension>" file in
// the system temp directory. The returned cleanup removes it.
func WriteTempFile(content []byte, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "avtoolbox-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.Write(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}
	return path, cleanup, nil
}

// ValidateExtension checks that extension is safe inside a file name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputDir, err)
		}
	}
	return os.WriteFile(path, data, FilePerm) // #nosec G306 -- user-facing output
}

// ReplaceExt swaps the extension of path for ext, which may omit the dot.
//
//	ReplaceExt("posts/latency.md", "html") == "posts/latency.html"
//	ReplaceExt("README", ".html")          == "README.html"
func ReplaceExt(path, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// FileExists returns true if the path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath reports whether s looks like a path rather than a bare name,
// which is how --style tells "dark" from "./brand.css".
//
//   - "dark" -> false
//   - "./brand.css" -> true
//   - "C:\styles\brand.css" -> true
//   - "brand.css" -> true (has a .css extension)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.EqualFold(filepath.Ext(s), ".css")
}
