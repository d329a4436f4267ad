package avtoolbox

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-avtoolbox/internal/assets"
	"github.com/alnah/go-avtoolbox/internal/catalog"
	"github.com/alnah/go-avtoolbox/internal/fileutil"
	"github.com/alnah/go-avtoolbox/internal/graphics"
	"github.com/alnah/go-avtoolbox/internal/logging"
	"github.com/alnah/go-avtoolbox/internal/snapshot"
)

// rasterizer turns SVG images into PNG. Tests replace the Chrome-backed
// implementation.
type rasterizer interface {
	PNG(ctx context.Context, img graphics.Image) ([]byte, error)
	Close() error
}

var _ rasterizer = (*snapshot.Rasterizer)(nil)

// toolboxConfig holds the options collected before New builds a Toolbox.
type toolboxConfig struct {
	logger          zerolog.Logger
	catalog         *catalog.Catalog
	postsDir        string
	assetsDir       string
	snapshotTimeout time.Duration
	rasterizer      rasterizer
}

// Option configures a Toolbox.
type Option func(*toolboxConfig)

// WithLogger sets the logger used by the toolbox and its components.
func WithLogger(l zerolog.Logger) Option {
	return func(c *toolboxConfig) { c.logger = l }
}

// WithCatalog uses cat instead of the embedded content.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *toolboxConfig) { c.catalog = cat }
}

// WithPostsDir reads articles from dir instead of the embedded posts. The
// tool registry stays embedded.
func WithPostsDir(dir string) Option {
	return func(c *toolboxConfig) { c.postsDir = dir }
}

// WithAssetsDir overlays styles and templates from dir on the embedded
// assets.
func WithAssetsDir(dir string) Option {
	return func(c *toolboxConfig) { c.assetsDir = dir }
}

// WithSnapshotTimeout bounds each PNG capture.
func WithSnapshotTimeout(d time.Duration) Option {
	return func(c *toolboxConfig) { c.snapshotTimeout = d }
}

// withRasterizer injects a PNG backend.
func withRasterizer(r rasterizer) Option {
	return func(c *toolboxConfig) { c.rasterizer = r }
}

// Toolbox runs calculators, renders articles and exports graphics.
// Create with New and Close when done; Close stops the browser started by
// PNG exports. A Toolbox is safe for concurrent use.
type Toolbox struct {
	logger     zerolog.Logger
	catalog    *catalog.Catalog
	assets     assets.Loader
	rasterizer rasterizer
}

// New builds a Toolbox. It fails when the content or the asset directory
// cannot be loaded.
func New(opts ...Option) (*Toolbox, error) {
	cfg := toolboxConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cat := cfg.catalog
	if cat == nil {
		var err error
		if cfg.postsDir != "" {
			if !fileutil.DirExists(cfg.postsDir) {
				return nil, fmt.Errorf("%w: %s", ErrPostsDir, cfg.postsDir)
			}
			cat, err = catalog.Load(catalog.Embedded(),
				catalog.WithPostsFS(os.DirFS(cfg.postsDir)),
				catalog.WithLogger(cfg.logger),
			)
		} else {
			cat, err = catalog.Default()
		}
		if err != nil {
			return nil, fmt.Errorf("loading content: %w", err)
		}
	}

	loader, err := assets.NewResolver(cfg.assetsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	r := cfg.rasterizer
	if r == nil {
		r = snapshot.New(
			snapshot.WithTimeout(cfg.snapshotTimeout),
			snapshot.WithLogger(logging.Named(cfg.logger, "snapshot")),
		)
	}

	return &Toolbox{
		logger:     cfg.logger,
		catalog:    cat,
		assets:     loader,
		rasterizer: r,
	}, nil
}

// Catalog returns the tool and post registry.
func (t *Toolbox) Catalog() *catalog.Catalog {
	return t.catalog
}

// Close releases the browser, if one was started.
func (t *Toolbox) Close() error {
	return t.rasterizer.Close()
}
