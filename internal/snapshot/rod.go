package snapshot

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"

	"github.com/alnah/go-avtoolbox/internal/process"
)

// capturer screenshots a local file; the rod implementation is replaced in
// tests.
type capturer interface {
	Capture(ctx context.Context, path string, width, height int) ([]byte, error)
	Close() error
}

var _ capturer = (*rodCapturer)(nil)

// rodCapturer drives one lazily launched Chrome.
type rodCapturer struct {
	launcher   *launcher.Launcher
	browser    *rod.Browser
	timeout    time.Duration
	browserBin string
	noSandbox  bool
	logger     zerolog.Logger
}

func (c *rodCapturer) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New()
	if c.browserBin != "" {
		l = l.Bin(c.browserBin)
	}
	if c.noSandbox {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	c.launcher, c.browser = l, browser
	c.logger.Debug().Int("pid", l.PID()).Msg("browser launched")
	return nil
}

// Capture opens path and screenshots the top-left width x height pixels.
func (c *rodCapturer) Capture(ctx context.Context, path string, width, height int) ([]byte, error) {
	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer page.Close()

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	page = page.Context(ctx).Timeout(timeout)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("%w: viewport: %v", ErrPageLoad, err)
	}
	if err := page.Navigate("file://" + path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	png, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
		Clip: &proto.PageViewport{
			Width:  float64(width),
			Height: float64(height),
			Scale:  1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return png, nil
}

// Close shuts the browser down and kills its process tree.
func (c *rodCapturer) Close() error {
	if c.browser == nil {
		return nil
	}
	err := c.browser.Close()
	process.KillProcessGroup(c.launcher.PID())
	c.launcher.Kill()
	c.launcher.Cleanup()
	c.browser, c.launcher = nil, nil
	return err
}

// browserEnv reads the rod environment variables.
func browserEnv() (bin string, noSandbox bool) {
	bin = os.Getenv("ROD_BROWSER_BIN")
	noSandbox = os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true"
	return bin, noSandbox
}
