package formula

import (
	"fmt"
	"strconv"
)

// CountdownInput is a configured duration. Minutes and seconds are
// conventionally below 60 but larger values are carried over.
type CountdownInput struct {
	Hours   int
	Minutes int
	Seconds int
}

// CountdownResult is the configured duration in seconds and milliseconds.
type CountdownResult struct {
	TotalSeconds int
	TotalMs      int64
}

// Clock returns the duration as zero-padded HH:MM:SS.
func (r CountdownResult) Clock() string {
	return Clock(r.TotalSeconds)
}

// Countdown totals the configured hours, minutes and seconds.
func Countdown(in CountdownInput) CountdownResult {
	total := in.Hours*3600 + in.Minutes*60 + in.Seconds
	return CountdownResult{TotalSeconds: total, TotalMs: int64(total) * 1000}
}

// Clock formats seconds as zero-padded HH:MM:SS.
func Clock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Remaining formats a live remaining time. Partial seconds round up, and
// the hours field is omitted while it is zero (MM:SS).
func Remaining(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := int((ms + 999) / 1000)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Progress returns the elapsed share of totalMs in percent, 0 when totalMs is 0.
func Progress(totalMs, remainingMs int64) float64 {
	if totalMs <= 0 {
		return 0
	}
	return float64(totalMs-remainingMs) / float64(totalMs) * 100
}

// OverlayURL builds the browser-source URL that starts a countdown of totalMs.
func OverlayURL(origin string, totalMs int64) string {
	return origin + "/?countdown=" + strconv.FormatInt(totalMs, 10)
}
