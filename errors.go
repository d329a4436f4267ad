package avtoolbox

import (
	"errors"

	"github.com/alnah/go-avtoolbox/internal/assets"
	"github.com/alnah/go-avtoolbox/internal/bind"
	"github.com/alnah/go-avtoolbox/internal/catalog"
	"github.com/alnah/go-avtoolbox/internal/graphics"
	"github.com/alnah/go-avtoolbox/internal/pipeline"
	"github.com/alnah/go-avtoolbox/internal/snapshot"
)

// Sentinel errors for library operations. They alias the internal
// sentinels so errors.Is works across the package boundary.
var (
	// ErrInvalidInput wraps every rejected calculator parameter.
	ErrInvalidInput = bind.ErrInvalidInput

	// Content errors.
	ErrUnknownTool    = catalog.ErrUnknownTool
	ErrPostNotFound   = catalog.ErrPostNotFound
	ErrInvalidCatalog = catalog.ErrInvalidCatalog
	ErrPostsDir       = errors.New("posts directory not found")

	// Article errors.
	ErrUnknownEngine = pipeline.ErrUnknownEngine
	ErrEmptyContent  = pipeline.ErrEmptyContent
	ErrPageRender    = pipeline.ErrPageRender

	// Asset errors.
	ErrStyleNotFound       = assets.ErrStyleNotFound
	ErrTemplateSetNotFound = assets.ErrTemplateSetNotFound
	ErrInvalidAssetPath    = assets.ErrInvalidBasePath

	// Export errors.
	ErrRender         = graphics.ErrRender
	ErrBrowserConnect = snapshot.ErrBrowserConnect
	ErrPageLoad       = snapshot.ErrPageLoad
	ErrSnapshot       = snapshot.ErrSnapshot
	ErrExportFormat   = errors.New("unknown export format")
)

// ParamError names the calculator parameter that was rejected. It wraps
// ErrInvalidInput.
type ParamError = bind.Error
