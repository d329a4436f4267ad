// Package snapshot rasterizes SVG graphics to PNG with headless Chrome.
//
// The browser is launched on first use and reused until Close. Rod
// downloads Chromium when none is installed; set ROD_BROWSER_BIN to use a
// local binary and ROD_NO_SANDBOX=1 in containers.
package snapshot
