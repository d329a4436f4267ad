package assets

// Resolver tries a custom directory first and falls back to the embedded
// assets when the custom directory lacks the asset.
type Resolver struct {
	custom   Loader // nil without a custom directory
	embedded Loader
}

// NewResolver creates a Resolver. An empty dir uses embedded assets only.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if dir != "" {
		custom, err := NewDirLoader(dir)
		if err != nil {
			return nil, err
		}
		r.custom = custom
	}
	return r, nil
}

// HasCustom reports whether a custom directory is configured.
func (r *Resolver) HasCustom() bool { return r.custom != nil }

// LoadStyle loads a style, custom first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom != nil {
		css, err := r.custom.LoadStyle(name)
		if err == nil || !IsNotFound(err) {
			return css, err
		}
	}
	return r.embedded.LoadStyle(name)
}

// LoadTemplateSet loads a template set, custom first. An incomplete custom
// set is an error rather than a reason to fall back.
func (r *Resolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	if r.custom != nil {
		ts, err := r.custom.LoadTemplateSet(name)
		if err == nil || !IsNotFound(err) {
			return ts, err
		}
	}
	return r.embedded.LoadTemplateSet(name)
}

var _ Loader = (*Resolver)(nil)
