package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed styles/*.css templates
var embedded embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads styles/{name}.css.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	data, err := embedded.ReadFile(path.Join("styles", name+".css"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(data), nil
}

// LoadTemplateSet loads templates/{name}/.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return readTemplateSet(name, func(file string) ([]byte, error) {
		return embedded.ReadFile(path.Join("templates", name, file))
	})
}

// StyleNames lists the built-in styles.
func StyleNames() []string {
	entries, err := embedded.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	return names
}

// readTemplateSet reads both templates with read. A set with neither file
// does not exist; a set with only one is incomplete.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	page, pageErr := read(pageFile)
	related, relErr := read(relatedFile)

	pageMissing := errors.Is(pageErr, fs.ErrNotExist)
	relMissing := errors.Is(relErr, fs.ErrNotExist)
	switch {
	case pageMissing && relMissing:
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	case pageErr != nil && !pageMissing:
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetRead, pageFile, pageErr)
	case relErr != nil && !relMissing:
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetRead, relatedFile, relErr)
	case pageMissing:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, pageFile)
	case relMissing:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, relatedFile)
	}
	return &TemplateSet{Name: name, Page: string(page), Related: string(related)}, nil
}

var _ Loader = (*EmbeddedLoader)(nil)
