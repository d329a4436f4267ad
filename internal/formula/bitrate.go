package formula

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is a standard video frame size.
type Resolution int

// Supported resolutions, smallest first.
const (
	Res720p Resolution = iota
	Res1080p
	Res1440p
	Res4K
)

// Resolutions lists every Resolution in ascending order.
var Resolutions = []Resolution{Res720p, Res1080p, Res1440p, Res4K}

var resolutionInfo = [...]struct {
	label string
	w, h  int
	kbps  float64 // H.264, 60fps, High quality
}{
	Res720p:  {"720p", 1280, 720, 3000},
	Res1080p: {"1080p", 1920, 1080, 6000},
	Res1440p: {"1440p", 2560, 1440, 10000},
	Res4K:    {"4K", 3840, 2160, 18000},
}

// String returns the display label, e.g. "1080p".
func (r Resolution) String() string {
	if r < 0 || int(r) >= len(resolutionInfo) {
		return "Resolution(" + strconv.Itoa(int(r)) + ")"
	}
	return resolutionInfo[r].label
}

// Size returns the frame width and height in pixels.
func (r Resolution) Size() (width, height int) {
	if r < 0 || int(r) >= len(resolutionInfo) {
		return 0, 0
	}
	return resolutionInfo[r].w, resolutionInfo[r].h
}

// ParseResolution accepts labels like "1080p" or "4k" (case-insensitive).
func ParseResolution(s string) (Resolution, error) {
	for i, info := range resolutionInfo {
		if strings.EqualFold(s, info.label) {
			return Resolution(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resolution %q (want 720p, 1080p, 1440p, 4K)", s)
}

// FrameRate is a supported frames-per-second value.
type FrameRate int

// Supported frame rates.
const (
	FPS24 FrameRate = 24
	FPS25 FrameRate = 25
	FPS30 FrameRate = 30
	FPS50 FrameRate = 50
	FPS60 FrameRate = 60
)

var fpsFactors = map[FrameRate]float64{
	FPS24: 0.7,
	FPS25: 0.72,
	FPS30: 0.8,
	FPS50: 0.95,
	FPS60: 1.0,
}

// ParseFrameRate accepts "30" or "30fps".
func ParseFrameRate(s string) (FrameRate, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "fps"))
	if err == nil {
		if _, ok := fpsFactors[FrameRate(n)]; ok {
			return FrameRate(n), nil
		}
	}
	return 0, fmt.Errorf("unsupported frame rate %q (want 24, 25, 30, 50, 60)", s)
}

// Codec is a video compression format.
type Codec int

// Supported codecs.
const (
	CodecH264 Codec = iota
	CodecHEVC
	CodecAV1
	CodecVP9
)

var codecInfo = [...]struct {
	label   string
	aliases []string
	factor  float64
}{
	CodecH264: {"H.264", []string{"h264", "avc"}, 1.0},
	CodecHEVC: {"H.265/HEVC", []string{"h265", "hevc", "h.265"}, 0.6},
	CodecAV1:  {"AV1", nil, 0.5},
	CodecVP9:  {"VP9", nil, 0.65},
}

// String returns the display label.
func (c Codec) String() string {
	if c < 0 || int(c) >= len(codecInfo) {
		return "Codec(" + strconv.Itoa(int(c)) + ")"
	}
	return codecInfo[c].label
}

// Factor is the bitrate multiplier relative to H.264.
func (c Codec) Factor() float64 {
	if c < 0 || int(c) >= len(codecInfo) {
		return 1
	}
	return codecInfo[c].factor
}

// ParseCodec accepts display labels and common aliases.
func ParseCodec(s string) (Codec, error) {
	for i, info := range codecInfo {
		if strings.EqualFold(s, info.label) {
			return Codec(i), nil
		}
		for _, a := range info.aliases {
			if strings.EqualFold(s, a) {
				return Codec(i), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown codec %q (want h264, hevc, av1, vp9)", s)
}

// Quality is the target visual quality tier.
type Quality int

// Quality tiers.
const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
	QualityUltra
)

var qualityInfo = [...]struct {
	label  string
	factor float64
}{
	QualityLow:    {"Low", 0.5},
	QualityMedium: {"Medium", 0.75},
	QualityHigh:   {"High", 1.0},
	QualityUltra:  {"Ultra", 1.4},
}

// String returns the display label.
func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityInfo) {
		return "Quality(" + strconv.Itoa(int(q)) + ")"
	}
	return qualityInfo[q].label
}

// ParseQuality accepts "low", "medium", "high" or "ultra".
func ParseQuality(s string) (Quality, error) {
	for i, info := range qualityInfo {
		if strings.EqualFold(s, info.label) {
			return Quality(i), nil
		}
	}
	return 0, fmt.Errorf("unknown quality %q (want low, medium, high, ultra)", s)
}

// AudioBitrateKbps is the fixed audio allowance added to every stream.
const AudioBitrateKbps = 128

// uploadHeadroom is applied to the total bitrate for the minimum upload speed.
const uploadHeadroom = 1.3

// BitrateInput selects the encode settings.
type BitrateInput struct {
	Resolution Resolution
	FPS        FrameRate
	Codec      Codec
	Quality    Quality
}

// BitrateResult holds recommended rates in kbps.
type BitrateResult struct {
	VideoKbps     int
	AudioKbps     int
	TotalKbps     int
	MinUploadKbps int
}

// Bitrate recommends a video bitrate and the upload speed it needs.
// Unknown enum values fall back to a factor of 1 and the 1080p base rate.
func Bitrate(in BitrateInput) BitrateResult {
	base := resolutionInfo[Res1080p].kbps
	if in.Resolution >= 0 && int(in.Resolution) < len(resolutionInfo) {
		base = resolutionInfo[in.Resolution].kbps
	}
	fps, ok := fpsFactors[in.FPS]
	if !ok {
		fps = 1
	}
	quality := 1.0
	if in.Quality >= 0 && int(in.Quality) < len(qualityInfo) {
		quality = qualityInfo[in.Quality].factor
	}

	video := int(roundHalfUp(base * fps * in.Codec.Factor() * quality))
	total := video + AudioBitrateKbps

	return BitrateResult{
		VideoKbps:     video,
		AudioKbps:     AudioBitrateKbps,
		TotalKbps:     total,
		MinUploadKbps: int(roundHalfUp(float64(total) * uploadHeadroom)),
	}
}

// LadderRung is one resolution/bitrate pair of an adaptive ladder.
type LadderRung struct {
	Resolution Resolution
	BitrateResult
}

// Ladder computes a rung for every resolution with shared fps, codec and quality.
func Ladder(fps FrameRate, codec Codec, quality Quality) []LadderRung {
	rungs := make([]LadderRung, 0, len(Resolutions))
	for _, r := range Resolutions {
		rungs = append(rungs, LadderRung{
			Resolution:    r,
			BitrateResult: Bitrate(BitrateInput{Resolution: r, FPS: fps, Codec: codec, Quality: quality}),
		})
	}
	return rungs
}

// FormatBitrate splits kbps into a display value and unit.
// Values of 1000 kbps and above are shown in Mbps with one decimal.
func FormatBitrate(kbps int) (value, unit string) {
	if kbps >= 1000 {
		return strconv.FormatFloat(float64(kbps)/1000, 'f', 1, 64), "Mbps"
	}
	return strconv.Itoa(kbps), "kbps"
}
