// Package assets provides the CSS styles and HTML templates used to turn a
// rendered article into a standalone page.
//
// # Loaders
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and the default template set
//	    ├── DirLoader         - a custom directory on disk
//	    └── Resolver          - custom directory first, embedded fallback
//
// # Directory Structure
//
//	{dir}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}/
//	        ├── page.html      # html/template for the whole document
//	        └── related.html   # html/template for the related-tool card
//
// Names are validated before use and DirLoader refuses paths that resolve
// outside its directory, symlinks included.
package assets
