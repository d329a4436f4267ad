package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrUnknownTool indicates a slug that names no tool.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrUnknownCategory indicates a slug that names no category.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrPostNotFound indicates the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidCatalog indicates the content files are inconsistent.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrCatalogRead indicates an I/O error while reading content files.
	ErrCatalogRead = errors.New("failed to read catalog")
)
