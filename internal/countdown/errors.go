package countdown

import "errors"

// Sentinel errors for invalid transitions.
var (
	ErrExpired      = errors.New("countdown expired")
	ErrNotIdle      = errors.New("countdown must be reset before it can be configured")
	ErrNotRunning   = errors.New("countdown is not running")
	ErrZeroDuration = errors.New("countdown duration must be positive")
)
