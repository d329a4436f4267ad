package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CableType is a signal cable family.
type CableType int

// Cable families.
const (
	CableHDMI CableType = iota
	CableSDI
	CableUSB
	CableCat6
	CableFiber
)

// SignalFormat is a resolution and frame rate pair carried by a cable.
type SignalFormat int

// Signal formats.
const (
	Format1080p30 SignalFormat = iota
	Format1080p60
	Format4K30
	Format4K60
)

var cableInfo = [...]struct {
	key, label string
	maxFt      [4]float64 // indexed by SignalFormat
	note       string
}{
	CableHDMI:  {"hdmi", "HDMI", [4]float64{50, 45, 25, 16}, "Active cable recommended beyond 25 ft"},
	CableSDI:   {"sdi", "SDI", [4]float64{330, 260, 200, 165}, "No signal loss within rated range"},
	CableUSB:   {"usb", "USB", [4]float64{16, 16, 10, 6}, "USB 3.0 limit, use an extender beyond"},
	CableCat6:  {"cat6", "Cat6/HDBaseT", [4]float64{330, 330, 230, 165}, "100 m channel limit per spec"},
	CableFiber: {"fiber", "Fiber", [4]float64{1000, 1000, 1000, 1000}, "Very long runs with converters"},
}

var formatLabels = [...]string{
	Format1080p30: "1080p30",
	Format1080p60: "1080p60",
	Format4K30:    "4K30",
	Format4K60:    "4K60",
}

// String returns the cable display label.
func (c CableType) String() string {
	if c < 0 || int(c) >= len(cableInfo) {
		return "CableType(" + strconv.Itoa(int(c)) + ")"
	}
	return cableInfo[c].label
}

// Note returns installation guidance for the cable family.
func (c CableType) Note() string {
	if c < 0 || int(c) >= len(cableInfo) {
		return ""
	}
	return cableInfo[c].note
}

// ParseCableType accepts keys such as "hdmi" or "cat6".
func ParseCableType(s string) (CableType, error) {
	for i, info := range cableInfo {
		if strings.EqualFold(s, info.key) || strings.EqualFold(s, info.label) {
			return CableType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cable type %q (want hdmi, sdi, usb, cat6, fiber)", s)
}

// String returns the format label, e.g. "4K60".
func (f SignalFormat) String() string {
	if f < 0 || int(f) >= len(formatLabels) {
		return "SignalFormat(" + strconv.Itoa(int(f)) + ")"
	}
	return formatLabels[f]
}

// ParseSignalFormat accepts labels such as "1080p60" (case-insensitive).
func ParseSignalFormat(s string) (SignalFormat, error) {
	for i, label := range formatLabels {
		if strings.EqualFold(s, label) {
			return SignalFormat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown signal format %q (want 1080p30, 1080p60, 4K30, 4K60)", s)
}

// defaultMaxFt applies to combinations missing from the table.
const defaultMaxFt = 50

// MaxDistanceFt returns the rated run length for a cable and signal format.
func MaxDistanceFt(c CableType, f SignalFormat) float64 {
	if c < 0 || int(c) >= len(cableInfo) || f < 0 || int(f) >= len(formatLabels) {
		return defaultMaxFt
	}
	return cableInfo[c].maxFt[f]
}

// CableCheckInput is a planned run in feet.
type CableCheckInput struct {
	Cable           CableType
	Format          SignalFormat
	PlannedDistance float64
}

// CableCheckResult compares a run against the rated maximum.
type CableCheckResult struct {
	MaxDistance float64
	WithinLimit bool
	PercentUsed float64 // capped at 100
	Advice      string  // set when the run exceeds the limit
}

// CableCheck reports whether the planned distance is within spec.
// A run exactly at the maximum is within the limit.
func CableCheck(in CableCheckInput) CableCheckResult {
	maxDist := MaxDistanceFt(in.Cable, in.Format)
	res := CableCheckResult{
		MaxDistance: maxDist,
		WithinLimit: in.PlannedDistance <= maxDist,
		PercentUsed: math.Min(100, in.PlannedDistance/maxDist*100),
	}
	if !res.WithinLimit {
		res.Advice = exceededAdvice(in.Cable)
	}
	return res
}

func exceededAdvice(c CableType) string {
	if c == CableHDMI {
		return "Consider using an active optical HDMI cable or SDI with a converter for this distance."
	}
	return "Consider using fiber optic with appropriate converters for this distance."
}

// Routing is how a cable travels across a room.
type Routing int

// Routing paths with their length multipliers.
const (
	RouteDirect Routing = iota
	RouteWallRun
	RouteCeiling
	RouteFloorBox
)

var routingInfo = [...]struct {
	key, label string
	factor     float64
}{
	RouteDirect:   {"direct", "Direct", 1.0},
	RouteWallRun:  {"wall", "Wall Run", 1.3},
	RouteCeiling:  {"ceiling", "Ceiling", 1.5},
	RouteFloorBox: {"floor", "Floor Box", 1.4},
}

// String returns the routing display label.
func (r Routing) String() string {
	if r < 0 || int(r) >= len(routingInfo) {
		return "Routing(" + strconv.Itoa(int(r)) + ")"
	}
	return routingInfo[r].label
}

// Factor returns the length multiplier for the route.
func (r Routing) Factor() float64 {
	if r < 0 || int(r) >= len(routingInfo) {
		return 1
	}
	return routingInfo[r].factor
}

// ParseRouting accepts "direct", "wall", "ceiling" or "floor".
func ParseRouting(s string) (Routing, error) {
	norm := strings.ReplaceAll(strings.ToLower(s), " ", "")
	for i, info := range routingInfo {
		if norm == info.key || norm == strings.ReplaceAll(strings.ToLower(info.label), " ", "") {
			return Routing(i), nil
		}
	}
	return 0, fmt.Errorf("unknown routing %q (want direct, wall, ceiling, floor)", s)
}

// Route estimation constants.
const (
	slackFactor = 1.1
	roundUpTo   = 5
)

// CableRouteInput is a room measured in Unit.
type CableRouteInput struct {
	RoomLength float64
	RoomWidth  float64
	Routing    Routing
	Cable      CableType
	Format     SignalFormat
	Unit       Unit
}

// CableRouteResult is the estimated run, in the input Unit.
type CableRouteResult struct {
	Diagonal    float64
	Estimated   float64
	WithSlack   float64
	Recommended float64 // WithSlack rounded up to a multiple of 5
	MaxDistance float64
	WithinLimit bool
	Note        string
}

// CableRoute estimates a run across the room diagonal with routing and slack.
func CableRoute(in CableRouteInput) CableRouteResult {
	diagonal := math.Sqrt(in.RoomLength*in.RoomLength + in.RoomWidth*in.RoomWidth)
	estimated := diagonal * in.Routing.Factor()
	withSlack := estimated * slackFactor
	recommended := math.Ceil(withSlack/roundUpTo) * roundUpTo

	maxDist := MaxDistanceFt(in.Cable, in.Format)
	if in.Unit == Meters {
		maxDist *= MetersPerFoot
	}

	return CableRouteResult{
		Diagonal:    diagonal,
		Estimated:   estimated,
		WithSlack:   withSlack,
		Recommended: recommended,
		MaxDistance: maxDist,
		WithinLimit: recommended <= maxDist,
		Note:        in.Cable.Note(),
	}
}
