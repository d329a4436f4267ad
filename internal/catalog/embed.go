package catalog

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed data/tools.yaml data/posts/*.md
var content embed.FS

// Embedded returns the built-in content tree (tools.yaml and posts/).
func Embedded() fs.FS {
	sub, err := fs.Sub(content, "data")
	if err != nil {
		panic(err) // embed pattern guarantees the directory
	}
	return sub
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(Embedded())
})

// Default returns the catalog built from the embedded content. It is
// loaded once per process.
func Default() (*Catalog, error) {
	return loadDefault()
}
