package formula

import (
	"fmt"
	"strings"
)

// Broadcast safe-area scale factors.
const (
	ActionSafeScale = 0.9
	TitleSafeScale  = 0.8
)

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// String formats the rectangle size as "WxH".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// SafeAreaResult describes the safe zones of a frame.
type SafeAreaResult struct {
	Frame    Rect
	Action   Rect
	Title    Rect
	MarginPx int // title margin on each side
}

// SafeArea computes the 90% action-safe and 80% title-safe zones.
func SafeArea(width, height int) SafeAreaResult {
	w, h := float64(width), float64(height)
	return SafeAreaResult{
		Frame:    Rect{Width: width, Height: height},
		Action:   centered(width, height, int(roundHalfUp(w*ActionSafeScale)), int(roundHalfUp(h*ActionSafeScale))),
		Title:    centered(width, height, int(roundHalfUp(w*TitleSafeScale)), int(roundHalfUp(h*TitleSafeScale))),
		MarginPx: int(roundHalfUp(w * 0.1)),
	}
}

// SafeAreaInsets computes safe zones from per-side insets given in percent,
// e.g. actionInset=5 keeps 5% clear on every edge.
func SafeAreaInsets(width, height int, actionInset, titleInset float64) SafeAreaResult {
	return SafeAreaResult{
		Frame:    Rect{Width: width, Height: height},
		Action:   inset(width, height, actionInset/100),
		Title:    inset(width, height, titleInset/100),
		MarginPx: int(roundHalfUp(float64(width) * titleInset / 100)),
	}
}

func centered(frameW, frameH, w, h int) Rect {
	return Rect{X: (frameW - w) / 2, Y: (frameH - h) / 2, Width: w, Height: h}
}

func inset(frameW, frameH int, frac float64) Rect {
	x := roundHalfUp(float64(frameW) * frac)
	y := roundHalfUp(float64(frameH) * frac)
	return Rect{
		X:      int(x),
		Y:      int(y),
		Width:  frameW - 2*int(x),
		Height: frameH - 2*int(y),
	}
}

// FramePreset is a named frame size used by the overlay tool.
type FramePreset struct {
	Label         string
	Width, Height int
}

// FramePresets are the aspect ratios offered by the overlay tool.
var FramePresets = []FramePreset{
	{"16:9", 1920, 1080},
	{"4:3", 1440, 1080},
	{"21:9", 2560, 1080},
	{"1:1", 1080, 1080},
	{"9:16", 1080, 1920},
}

// LookupFrame resolves a resolution label ("1080p") or an aspect preset
// label ("9:16") to pixel dimensions.
func LookupFrame(label string) (width, height int, ok bool) {
	if r, err := ParseResolution(label); err == nil {
		w, h := r.Size()
		return w, h, true
	}
	for _, p := range FramePresets {
		if strings.EqualFold(p.Label, label) {
			return p.Width, p.Height, true
		}
	}
	return 0, 0, false
}
