// Package countdown runs the live countdown display.
//
// A Timer is a small state machine:
//
//	Idle ──Start──▶ Running ──Pause──▶ Paused
//	  ▲               │  ▲               │
//	  │             Tick └──────Start────┘
//	  │               ▼
//	  └──Reset──── Expired
//
// Reset returns to Idle from any state. Ticks are driven externally, either
// by calling Tick directly or by Run with a Ticker, so tests can step the
// clock without sleeping.
package countdown
