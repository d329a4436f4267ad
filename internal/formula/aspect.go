package formula

import (
	"math"
	"strconv"
)

// exactMatchEpsilon is the largest decimal difference still reported as a
// standard ratio.
const exactMatchEpsilon = 0.02

// StandardRatio is a named common aspect ratio.
type StandardRatio struct {
	Label string
	Value float64
}

// StandardRatios are the ratios searched for the nearest match, in order.
var StandardRatios = []StandardRatio{
	{"16:9", 16.0 / 9},
	{"4:3", 4.0 / 3},
	{"21:9", 21.0 / 9},
	{"1:1", 1},
	{"9:16", 9.0 / 16},
	{"3:2", 3.0 / 2},
	{"2.35:1", 2.35},
	{"1.85:1", 1.85},
}

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, n) is |n|.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// AspectInput is a frame size in pixels.
type AspectInput struct {
	Width  int
	Height int
}

// AspectResult is the reduced ratio and its nearest standard.
type AspectResult struct {
	RatioW      int
	RatioH      int
	Decimal     Quantity // width / height
	Nearest     StandardRatio
	HasNearest  bool
	ExactMatch  bool
	TotalPixels int
	Megapixels  float64
}

// Ratio formats the reduced ratio as "W:H".
func (r AspectResult) Ratio() string {
	return strconv.Itoa(r.RatioW) + ":" + strconv.Itoa(r.RatioH)
}

// Aspect reduces width:height and finds the closest standard ratio.
// A zero height leaves Decimal undefined and no nearest ratio.
func Aspect(in AspectInput) AspectResult {
	g := GCD(in.Width, in.Height)
	if g == 0 {
		g = 1
	}

	pixels := in.Width * in.Height
	res := AspectResult{
		RatioW:      in.Width / g,
		RatioH:      in.Height / g,
		TotalPixels: pixels,
		Megapixels:  float64(pixels) / 1_000_000,
	}

	if in.Height == 0 {
		return res
	}

	decimal := float64(in.Width) / float64(in.Height)
	res.Decimal = Defined(decimal)

	best := StandardRatios[0]
	for _, sr := range StandardRatios[1:] {
		if math.Abs(sr.Value-decimal) < math.Abs(best.Value-decimal) {
			best = sr
		}
	}
	res.Nearest = best
	res.HasNearest = true
	res.ExactMatch = math.Abs(best.Value-decimal) < exactMatchEpsilon

	return res
}

// ResizeWidth returns the height matching newWidth at the ratio of width:height.
func ResizeWidth(width, height, newWidth int) Quantity {
	if width == 0 {
		return None()
	}
	return Defined(roundHalfUp(float64(newWidth) * float64(height) / float64(width)))
}

// ResizeHeight returns the width matching newHeight at the ratio of width:height.
func ResizeHeight(width, height, newHeight int) Quantity {
	if height == 0 {
		return None()
	}
	return Defined(roundHalfUp(float64(newHeight) * float64(width) / float64(height)))
}
