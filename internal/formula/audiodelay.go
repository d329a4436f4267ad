package formula

import (
	"fmt"
	"strings"
)

// Unit is a length unit system. It also fixes the temperature scale:
// Fahrenheit for feet, Celsius for meters.
type Unit int

// Unit systems.
const (
	Feet Unit = iota
	Meters
)

// FeetPerMeter converts meters to feet; MetersPerFoot the reverse.
const (
	MetersPerFoot = 0.3048
	FeetPerMeter  = 1 / MetersPerFoot
)

// String returns "feet" or "meters".
func (u Unit) String() string {
	if u == Meters {
		return "meters"
	}
	return "feet"
}

// Abbrev returns "ft" or "m".
func (u Unit) Abbrev() string {
	if u == Meters {
		return "m"
	}
	return "ft"
}

// ParseUnit accepts "feet", "ft", "meters" or "m".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "feet", "ft", "foot":
		return Feet, nil
	case "meters", "m", "meter", "metres":
		return Meters, nil
	}
	return 0, fmt.Errorf("unknown unit %q (want feet or meters)", s)
}

// HaasOffsetMs is added to the propagation delay so the main PA is heard first.
const HaasOffsetMs = 10

// assumedFrameRate is used to convert a frame delay into milliseconds.
const assumedFrameRate = 30

// SpeedOfSound returns the speed of sound in unit per second at temperature.
func SpeedOfSound(u Unit, temperature float64) float64 {
	if u == Meters {
		return 331.3 + 0.606*temperature
	}
	return 1052 + 1.106*temperature
}

// PropagationInput describes a listener distance from a sound source.
type PropagationInput struct {
	Distance    float64
	Unit        Unit
	Temperature float64
}

// PropagationResult is the acoustic travel time.
type PropagationResult struct {
	SpeedOfSound  Quantity // unit per second
	DelayMs       Quantity
	RecommendedMs Quantity // DelayMs plus the Haas offset
}

// Propagation computes how long sound takes to cover the distance.
// A non-positive speed of sound leaves every field undefined.
func Propagation(in PropagationInput) PropagationResult {
	speed := SpeedOfSound(in.Unit, in.Temperature)
	if speed <= 0 {
		return PropagationResult{}
	}
	delay := Defined(in.Distance / speed * 1000)
	return PropagationResult{
		SpeedOfSound:  Defined(speed),
		DelayMs:       delay,
		RecommendedMs: Defined(delay.Or(0) + HaasOffsetMs),
	}
}

// SyncStatus grades the remaining audio/video offset.
type SyncStatus int

// Sync grades. SyncUndetermined is reported when the sound travel time is
// undefined.
const (
	SyncInSync SyncStatus = iota
	SyncSlightOffset
	SyncNeedsCorrection
	SyncUndetermined
)

// String returns the display label.
func (s SyncStatus) String() string {
	switch s {
	case SyncInSync:
		return "In Sync"
	case SyncSlightOffset:
		return "Slight Offset"
	case SyncNeedsCorrection:
		return "Needs Correction"
	default:
		return "Undetermined"
	}
}

// Sync thresholds in milliseconds.
const (
	inSyncBelowMs       = 5
	slightOffsetBelowMs = 30
)

// GradeSync classifies an audio delay to add.
func GradeSync(audioDelayMs float64) SyncStatus {
	switch {
	case audioDelayMs < inSyncBelowMs:
		return SyncInSync
	case audioDelayMs < slightOffsetBelowMs:
		return SyncSlightOffset
	default:
		return SyncNeedsCorrection
	}
}

// LipSyncInput adds video pipeline latency to a propagation setup.
type LipSyncInput struct {
	PropagationInput
	FrameDelay      float64 // frames at 30fps
	CameraLatencyMs float64
}

// LipSyncResult is the audio delay needed to line up with video.
type LipSyncResult struct {
	SoundTravelMs     Quantity
	VideoDelayMs      float64
	AudioDelayToAddMs Quantity
	Status            SyncStatus
}

// LipSync computes how much to delay audio so it arrives with the picture.
func LipSync(in LipSyncInput) LipSyncResult {
	video := in.FrameDelay/assumedFrameRate*1000 + in.CameraLatencyMs
	travel := Propagation(in.PropagationInput).DelayMs

	travelMs, ok := travel.Value()
	if !ok {
		return LipSyncResult{VideoDelayMs: video, Status: SyncUndetermined}
	}

	add := video - travelMs
	if add < 0 {
		add = 0
	}
	return LipSyncResult{
		SoundTravelMs:     travel,
		VideoDelayMs:      video,
		AudioDelayToAddMs: Defined(add),
		Status:            GradeSync(add),
	}
}
