package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-avtoolbox/internal/fileutil"
	"github.com/alnah/go-avtoolbox/internal/graphics"
)

// DefaultTimeout bounds one page load and screenshot.
const DefaultTimeout = 30 * time.Second

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithTimeout sets the per-image timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Rasterizer) {
		if d > 0 {
			r.rod.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Rasterizer) { r.rod.logger = l }
}

// WithBrowserBin uses a local Chrome binary instead of ROD_BROWSER_BIN.
func WithBrowserBin(path string) Option {
	return func(r *Rasterizer) { r.rod.browserBin = path }
}

// WithNoSandbox disables the Chrome sandbox.
func WithNoSandbox(v bool) Option {
	return func(r *Rasterizer) { r.rod.noSandbox = v }
}

// Rasterizer turns SVG images into PNG. It is safe for concurrent use;
// captures are serialized on the one browser.
type Rasterizer struct {
	mu  sync.Mutex
	rod *rodCapturer
	cap capturer
}

// New returns a Rasterizer. No browser starts until the first PNG call.
func New(opts ...Option) *Rasterizer {
	bin, noSandbox := browserEnv()
	r := &Rasterizer{rod: &rodCapturer{
		timeout:    DefaultTimeout,
		browserBin: bin,
		noSandbox:  noSandbox,
		logger:     zerolog.Nop(),
	}}
	for _, opt := range opts {
		opt(r)
	}
	r.cap = r.rod
	return r
}

// PNG renders img at its own pixel size.
func (r *Rasterizer) PNG(ctx context.Context, img graphics.Image) ([]byte, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageSize, img.Width, img.Height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, cleanup, err := fileutil.WriteTempFile(img.SVG, "svg")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cap.Capture(ctx, path, img.Width, img.Height)
}

// Close releases the browser. The Rasterizer can be used again afterwards.
func (r *Rasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cap.Close()
}
