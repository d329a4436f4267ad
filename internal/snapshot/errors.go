package snapshot

import "errors"

// Sentinel errors.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageLoad       = errors.New("failed to load page")
	ErrSnapshot       = errors.New("failed to capture screenshot")
	ErrImageSize      = errors.New("image size must be positive")
)
