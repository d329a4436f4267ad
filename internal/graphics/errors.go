package graphics

import "errors"

// Sentinel errors.
var (
	ErrRender    = errors.New("svg render failed")
	ErrFrameSize = errors.New("frame size must be positive")
)
