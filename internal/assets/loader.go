package assets

import (
	"fmt"
	"strings"
)

// Built-in asset names.
const (
	DefaultStyleName       = "default"
	DefaultTemplateSetName = "default"
)

// Template file names inside a template set directory.
const (
	pageFile    = "page.html"
	relatedFile = "related.html"
)

// TemplateSet holds the templates that frame an article.
type TemplateSet struct {
	Name    string
	Page    string // full document; receives the article and its metadata
	Related string // call-to-action card for the article's tool
}

// Loader loads styles and template sets by name.
type Loader interface {
	// LoadStyle returns the CSS for name (without .css).
	LoadStyle(name string) (string, error)

	// LoadTemplateSet returns the templates in templates/{name}/.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// ValidateName rejects empty names and names with separators or dots.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
