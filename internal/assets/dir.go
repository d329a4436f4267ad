package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirLoader loads assets from a directory on disk.
type DirLoader struct {
	root string
}

// NewDirLoader checks that dir is a readable directory. Symlinks in dir
// itself are resolved so containment checks compare real paths.
func NewDirLoader(dir string) (*DirLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}
	return &DirLoader{root: abs}, nil
}

// Root returns the resolved directory.
func (d *DirLoader) Root() string { return d.root }

// LoadStyle loads {root}/styles/{name}.css.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	data, err := d.read("styles", name+".css")
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadTemplateSet loads {root}/templates/{name}/.
func (d *DirLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return readTemplateSet(name, func(file string) ([]byte, error) {
		return d.read("templates", name, file)
	})
}

// read returns the file at root/elem..., refusing anything that resolves
// outside root. Not-exist errors are returned unwrapped.
func (d *DirLoader) read(elem ...string) ([]byte, error) {
	p := filepath.Join(append([]string{d.root}, elem...)...)
	if real, err := filepath.EvalSymlinks(p); err == nil {
		p = real
	}
	if !strings.HasPrefix(p, d.root+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, filepath.Join(elem...), d.root)
	}

	data, err := os.ReadFile(p) // #nosec G304 -- contained in root
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return data, err
}

var _ Loader = (*DirLoader)(nil)
