package formula

import (
	"fmt"
	"math"
	"strings"
)

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ThrowInput describes a single loudspeaker aimed at an audience.
type ThrowInput struct {
	HorizontalAngleDeg float64
	VerticalAngleDeg   float64
	ThrowDistance      float64 // feet
	SensitivityDb      float64 // dB SPL at 1W/1m
}

// ThrowResult is the coverage footprint at the throw distance.
type ThrowResult struct {
	CoverageWidth  float64
	CoverageHeight float64
	CoverageArea   float64
	SPL            Quantity // undefined when the throw distance is not positive
}

// Throw computes the coverage rectangle and inverse-square SPL estimate.
func Throw(in ThrowInput) ThrowResult {
	w := 2 * in.ThrowDistance * math.Tan(radians(in.HorizontalAngleDeg/2))
	h := 2 * in.ThrowDistance * math.Tan(radians(in.VerticalAngleDeg/2))

	spl := None()
	if in.ThrowDistance > 0 {
		spl = Defined(in.SensitivityDb - 20*math.Log10(in.ThrowDistance*MetersPerFoot))
	}

	return ThrowResult{
		CoverageWidth:  w,
		CoverageHeight: h,
		CoverageArea:   w * h,
		SPL:            spl,
	}
}

// SpeakerPreset is a dispersion pattern offered by the room planner.
type SpeakerPreset struct {
	Key         string
	Label       string
	AngleDeg    float64
	Description string
}

// SpeakerPresets lists the room planner speaker types.
var SpeakerPresets = []SpeakerPreset{
	{"point", "Point Source", 90, "Standard PA"},
	{"column", "Column", 120, "Line array"},
	{"wide", "Wide", 150, "Wide dispersion"},
	{"narrow", "Narrow", 60, "Long throw"},
}

// LookupSpeakerPreset finds a preset by key or label.
func LookupSpeakerPreset(s string) (SpeakerPreset, error) {
	for _, p := range SpeakerPresets {
		if strings.EqualFold(s, p.Key) || strings.EqualFold(s, p.Label) {
			return p, nil
		}
	}
	return SpeakerPreset{}, fmt.Errorf("unknown speaker type %q (want point, column, wide, narrow)", s)
}

// RoomInput is a rectangular room with ceiling speakers, in one unit.
type RoomInput struct {
	Width       float64
	Length      float64
	MountHeight float64
	AngleDeg    float64
}

// RoomResult is the speaker grid covering the room.
type RoomResult struct {
	Defined         bool // false when the radius is not positive or the grid is unbounded
	CoverageRadius  float64
	CoverageArea    float64 // per speaker
	RoomArea        float64
	GridWidth       int
	GridLength      int
	Speakers        int
	SpacingWidth    float64
	SpacingLength   float64
	CoveragePercent Quantity
}

// Room tiles the room with a grid of downward-facing speakers.
func Room(in RoomInput) RoomResult {
	radius := in.MountHeight * math.Tan(radians(in.AngleDeg/2))
	res := RoomResult{
		CoverageRadius: radius,
		CoverageArea:   math.Pi * radius * radius,
		RoomArea:       in.Width * in.Length,
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return res
	}

	gw, okW := gridCount(in.Width, radius)
	gl, okL := gridCount(in.Length, radius)
	if !okW || !okL || math.IsInf(res.RoomArea, 0) || float64(gw)*float64(gl) > math.MaxInt32 {
		return res
	}

	res.Defined = true
	res.GridWidth = gw
	res.GridLength = gl
	res.Speakers = gw * gl
	res.SpacingWidth = in.Width / float64(res.GridWidth)
	res.SpacingLength = in.Length / float64(res.GridLength)

	if res.RoomArea > 0 {
		res.CoveragePercent = Defined(math.Min(100, float64(res.Speakers)*res.CoverageArea/res.RoomArea*100))
	}
	return res
}

// gridCount is the speakers needed along one axis. It reports false when
// the count is not finite or does not fit in an int32.
func gridCount(dimension, radius float64) (int, bool) {
	q := math.Ceil(dimension / (2 * radius))
	if math.IsNaN(q) || q > math.MaxInt32 {
		return 0, false
	}
	if q < 1 {
		return 1, true
	}
	return int(q), true
}
