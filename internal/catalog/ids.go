package catalog

import (
	"fmt"
	"strings"
)

// ToolID identifies one of the calculators. The zero value is not a tool.
type ToolID int

// Known tools.
const (
	StreamDelay ToolID = iota + 1
	Bitrate
	SafeArea
	RTMP
	Countdown
	LowerThird
	AudioDelay
	AspectRatio
	CableLength
	SpeakerCoverage
)

// ToolIDs lists every tool in display order.
var ToolIDs = []ToolID{
	StreamDelay, Bitrate, SafeArea, RTMP, Countdown,
	LowerThird, AudioDelay, AspectRatio, CableLength, SpeakerCoverage,
}

var toolSlugs = [...]string{
	StreamDelay:     "stream-delay-calculator",
	Bitrate:         "bitrate-calculator",
	SafeArea:        "safe-area-overlay",
	RTMP:            "rtmp-url-builder",
	Countdown:       "countdown-generator",
	LowerThird:      "lower-third-builder",
	AudioDelay:      "audio-delay-calculator",
	AspectRatio:     "aspect-ratio-calculator",
	CableLength:     "cable-length-estimator",
	SpeakerCoverage: "speaker-coverage-calculator",
}

// Valid reports whether id is one of the known tools.
func (id ToolID) Valid() bool {
	return id > 0 && int(id) < len(toolSlugs)
}

// String returns the tool slug.
func (id ToolID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ToolID(%d)", int(id))
	}
	return toolSlugs[id]
}

// MarshalText encodes the tool as its slug.
func (id ToolID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ParseToolID resolves a tool slug. The "-calculator" style suffixes may
// be omitted, so "bitrate" and "bitrate-calculator" are equivalent.
func ParseToolID(slug string) (ToolID, error) {
	s := strings.ToLower(strings.TrimSpace(slug))
	for _, id := range ToolIDs {
		full := toolSlugs[id]
		if s == full || s == shortSlug(full) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, slug)
}

// ShortSlugs returns the suffix-free slugs, used for suggestions.
func ShortSlugs() []string {
	out := make([]string, len(ToolIDs))
	for i, id := range ToolIDs {
		out[i] = shortSlug(toolSlugs[id])
	}
	return out
}

func shortSlug(slug string) string {
	for _, suffix := range []string{"-calculator", "-overlay", "-builder", "-generator", "-estimator"} {
		if s, ok := strings.CutSuffix(slug, suffix); ok {
			return s
		}
	}
	return slug
}

// Category groups tools on the index page.
type Category int

// Tool categories.
const (
	CoreStreaming Category = iota + 1
	ProductionBroadcast
	AVEngineering
)

var categorySlugs = [...]string{
	CoreStreaming:       "core-streaming",
	ProductionBroadcast: "production-broadcast",
	AVEngineering:       "av-engineering",
}

// Categories lists every category in display order.
var Categories = []Category{CoreStreaming, ProductionBroadcast, AVEngineering}

// String returns the category slug.
func (c Category) String() string {
	if c <= 0 || int(c) >= len(categorySlugs) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categorySlugs[c]
}

// MarshalText encodes the category as its slug.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory resolves a category slug.
func ParseCategory(slug string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(slug, categorySlugs[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, slug)
}

// Icon is a tool's pictogram. Unknown names map to IconWrench.
type Icon int

// Icons.
const (
	IconWrench Icon = iota
	IconTimer
	IconActivity
	IconFrame
	IconLink
	IconClock
	IconSubtitles
	IconAudioLines
	IconMaximize
	IconCable
	IconVolume
)

var iconInfo = [...]struct {
	name  string
	glyph string
}{
	IconWrench:     {"Wrench", "🔧"},
	IconTimer:      {"Timer", "⏱"},
	IconActivity:   {"Activity", "📈"},
	IconFrame:      {"Frame", "🔲"},
	IconLink:       {"Link", "🔗"},
	IconClock:      {"Clock", "🕒"},
	IconSubtitles:  {"Subtitles", "💬"},
	IconAudioLines: {"AudioLines", "🎚"},
	IconMaximize:   {"Maximize2", "⤢"},
	IconCable:      {"Cable", "🔌"},
	IconVolume:     {"Volume2", "🔊"},
}

// ParseIcon resolves an icon name. ok is false when the name is unknown
// and the wrench fallback was returned.
func ParseIcon(name string) (icon Icon, ok bool) {
	for i, info := range iconInfo {
		if strings.EqualFold(name, info.name) {
			return Icon(i), true
		}
	}
	return IconWrench, false
}

// String returns the icon name.
func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconInfo) {
		return iconInfo[IconWrench].name
	}
	return iconInfo[i].name
}

// Glyph returns a terminal-friendly pictogram.
func (i Icon) Glyph() string {
	if i < 0 || int(i) >= len(iconInfo) {
		return iconInfo[IconWrench].glyph
	}
	return iconInfo[i].glyph
}
