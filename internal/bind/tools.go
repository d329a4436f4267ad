package bind

import (
	"github.com/alnah/go-avtoolbox/internal/formula"
)

type streamDelayParams struct {
	EncoderMs  float64 `param:"encoder" default:"150" validate:"min=0,max=5000"`
	BufferSec  float64 `param:"buffer" default:"3" validate:"min=0,max=30"`
	NetworkMs  float64 `param:"network" default:"50" validate:"min=0,max=2000"`
	SegmentSec float64 `param:"segment" default:"2" validate:"min=0,max=30"`
}

// StreamDelay binds encoder, buffer, network and segment.
func StreamDelay(p Params) (formula.StreamDelayInput, error) {
	var v streamDelayParams
	if err := Decode(p, &v); err != nil {
		return formula.StreamDelayInput{}, err
	}
	return formula.StreamDelayInput{
		EncoderDelayMs:     v.EncoderMs,
		PlayerBufferSec:    v.BufferSec,
		NetworkLatencyMs:   v.NetworkMs,
		SegmentDurationSec: v.SegmentSec,
	}, nil
}

type bitrateParams struct {
	Resolution string `param:"resolution" default:"1080p"`
	FPS        string `param:"fps" default:"60"`
	Codec      string `param:"codec" default:"h264"`
	Quality    string `param:"quality" default:"high"`
}

// Bitrate binds resolution, fps, codec and quality.
func Bitrate(p Params) (formula.BitrateInput, error) {
	var v bitrateParams
	if err := Decode(p, &v); err != nil {
		return formula.BitrateInput{}, err
	}

	var in formula.BitrateInput
	var err error
	if in.Resolution, err = formula.ParseResolution(v.Resolution); err != nil {
		return in, wrapEnum("resolution", err)
	}
	if in.FPS, err = formula.ParseFrameRate(v.FPS); err != nil {
		return in, wrapEnum("fps", err)
	}
	if in.Codec, err = formula.ParseCodec(v.Codec); err != nil {
		return in, wrapEnum("codec", err)
	}
	if in.Quality, err = formula.ParseQuality(v.Quality); err != nil {
		return in, wrapEnum("quality", err)
	}
	return in, nil
}

type safeAreaParams struct {
	Frame       string  `param:"frame" default:"1080p"`
	Width       int     `param:"width" validate:"omitempty,min=1,max=15360"`
	Height      int     `param:"height" validate:"omitempty,min=1,max=8640"`
	ActionInset float64 `param:"action" validate:"omitempty,min=0,max=25"`
	TitleInset  float64 `param:"title" validate:"omitempty,min=0,max=25"`
}

// SafeAreaInput is a frame size with optional custom insets in percent.
// Zero insets select the standard 90% and 80% zones.
type SafeAreaInput struct {
	Width       int
	Height      int
	ActionInset float64
	TitleInset  float64
}

// Custom reports whether custom insets were requested.
func (in SafeAreaInput) Custom() bool {
	return in.ActionInset > 0 || in.TitleInset > 0
}

// SafeArea binds a frame preset ("1080p", "9:16") or explicit width and
// height, plus optional action and title insets.
func SafeArea(p Params) (SafeAreaInput, error) {
	var v safeAreaParams
	if err := Decode(p, &v); err != nil {
		return SafeAreaInput{}, err
	}

	w, h, ok := formula.LookupFrame(v.Frame)
	if !ok {
		return SafeAreaInput{}, fieldErrorf("frame", "unknown frame %q (want a resolution such as 1080p or a ratio such as 16:9)", v.Frame)
	}
	if v.Width > 0 {
		w = v.Width
	}
	if v.Height > 0 {
		h = v.Height
	}

	in := SafeAreaInput{Width: w, Height: h, ActionInset: v.ActionInset, TitleInset: v.TitleInset}
	if in.Custom() {
		if in.ActionInset == 0 {
			in.ActionInset = 5
		}
		if in.TitleInset == 0 {
			in.TitleInset = 10
		}
		if in.TitleInset < in.ActionInset {
			return SafeAreaInput{}, fieldErrorf("title", "title inset %.4g must not be smaller than action inset %.4g", in.TitleInset, in.ActionInset)
		}
	}
	return in, nil
}

type rtmpParams struct {
	Platform string `param:"platform" default:"youtube"`
	Protocol string `param:"protocol" default:"rtmps"`
	Server   string `param:"server" validate:"omitempty,max=2048"`
	Key      string `param:"key" validate:"max=512"`
}

// RTMP binds platform, protocol, server and key.
func RTMP(p Params) (formula.RTMPInput, error) {
	var v rtmpParams
	if err := Decode(p, &v); err != nil {
		return formula.RTMPInput{}, err
	}

	in := formula.RTMPInput{Server: v.Server, StreamKey: v.Key}
	var err error
	if in.Platform, err = formula.ParsePlatform(v.Platform); err != nil {
		return in, wrapEnum("platform", err)
	}
	if in.Protocol, err = formula.ParseProtocol(v.Protocol); err != nil {
		return in, wrapEnum("protocol", err)
	}
	return in, nil
}

type countdownParams struct {
	Hours   int `param:"hours" default:"0" validate:"min=0,max=24"`
	Minutes int `param:"minutes" default:"5" validate:"min=0,max=59"`
	Seconds int `param:"seconds" default:"0" validate:"min=0,max=59"`
}

// Countdown binds hours, minutes and seconds.
func Countdown(p Params) (formula.CountdownInput, error) {
	var v countdownParams
	if err := Decode(p, &v); err != nil {
		return formula.CountdownInput{}, err
	}
	return formula.CountdownInput{Hours: v.Hours, Minutes: v.Minutes, Seconds: v.Seconds}, nil
}

type lowerThirdParams struct {
	Name   string `param:"name" default:"John Smith" validate:"max=80"`
	Title  string `param:"title" default:"Senior Producer" validate:"max=120"`
	Accent string `param:"accent" default:"#3B82F6"`
	Style  string `param:"style" default:"modern"`
}

// LowerThird binds name, title, accent and style. An accent that is not a
// hex color is passed through and replaced by the default color later.
func LowerThird(p Params) (formula.LowerThirdInput, error) {
	var v lowerThirdParams
	if err := Decode(p, &v); err != nil {
		return formula.LowerThirdInput{}, err
	}
	style, err := formula.ParseLowerThirdStyle(v.Style)
	if err != nil {
		return formula.LowerThirdInput{}, wrapEnum("style", err)
	}
	return formula.LowerThirdInput{Name: v.Name, Title: v.Title, AccentColor: v.Accent, Style: style}, nil
}

type propagationParams struct {
	Distance    float64 `param:"distance" default:"80" validate:"min=0,max=10000"`
	Unit        string  `param:"unit" default:"feet"`
	Temperature float64 `param:"temperature"`
}

type lipSyncParams struct {
	Distance    float64 `param:"distance" default:"30" validate:"min=0,max=10000"`
	Unit        string  `param:"unit" default:"feet"`
	Temperature float64 `param:"temperature"`
	Frames      float64 `param:"frames" default:"2" validate:"min=0,max=30"`
	CameraMs    float64 `param:"camera" default:"40" validate:"min=0,max=1000"`
}

// Default room temperatures per unit system.
const (
	defaultTempF = 72
	defaultTempC = 22
)

// Propagation binds distance, unit and temperature. The temperature scale
// follows the unit: Fahrenheit for feet, Celsius for meters.
func Propagation(p Params) (formula.PropagationInput, error) {
	var v propagationParams
	if err := Decode(p, &v); err != nil {
		return formula.PropagationInput{}, err
	}
	return propagationInput(p, v.Distance, v.Unit, v.Temperature)
}

// LipSync binds the propagation parameters plus frames and camera latency.
func LipSync(p Params) (formula.LipSyncInput, error) {
	var v lipSyncParams
	if err := Decode(p, &v); err != nil {
		return formula.LipSyncInput{}, err
	}
	prop, err := propagationInput(p, v.Distance, v.Unit, v.Temperature)
	if err != nil {
		return formula.LipSyncInput{}, err
	}
	return formula.LipSyncInput{PropagationInput: prop, FrameDelay: v.Frames, CameraLatencyMs: v.CameraMs}, nil
}

func propagationInput(p Params, distance float64, unitText string, temp float64) (formula.PropagationInput, error) {
	unit, err := formula.ParseUnit(unitText)
	if err != nil {
		return formula.PropagationInput{}, wrapEnum("unit", err)
	}

	lo, hi, def := -40.0, 130.0, float64(defaultTempF)
	if unit == formula.Meters {
		lo, hi, def = -40, 55, defaultTempC
	}
	if p["temperature"] == "" {
		temp = def
	}
	if temp < lo || temp > hi {
		return formula.PropagationInput{}, fieldErrorf("temperature", "temperature must be between %g and %g for %s", lo, hi, unit)
	}
	return formula.PropagationInput{Distance: distance, Unit: unit, Temperature: temp}, nil
}

type aspectParams struct {
	Width        int `param:"width" default:"1920" validate:"min=1,max=15360"`
	Height       int `param:"height" default:"1080" validate:"min=1,max=8640"`
	TargetWidth  int `param:"target-width" validate:"omitempty,min=1,max=15360"`
	TargetHeight int `param:"target-height" validate:"omitempty,min=1,max=8640"`
}

// AspectInput is a frame size plus an optional resize target.
type AspectInput struct {
	formula.AspectInput
	TargetWidth  int
	TargetHeight int
}

// Aspect binds width and height, and optionally target-width or
// target-height for a ratio-preserving resize.
func Aspect(p Params) (AspectInput, error) {
	var v aspectParams
	if err := Decode(p, &v); err != nil {
		return AspectInput{}, err
	}
	if v.TargetWidth > 0 && v.TargetHeight > 0 {
		return AspectInput{}, fieldErrorf("target-height", "set target-width or target-height, not both")
	}
	return AspectInput{
		AspectInput:  formula.AspectInput{Width: v.Width, Height: v.Height},
		TargetWidth:  v.TargetWidth,
		TargetHeight: v.TargetHeight,
	}, nil
}

type cableCheckParams struct {
	Cable    string  `param:"cable" default:"hdmi"`
	Format   string  `param:"format" default:"1080p60"`
	Distance float64 `param:"distance" default:"30" validate:"min=1,max=5000"`
}

// CableCheck binds cable, format and distance (feet).
func CableCheck(p Params) (formula.CableCheckInput, error) {
	var v cableCheckParams
	if err := Decode(p, &v); err != nil {
		return formula.CableCheckInput{}, err
	}
	cable, format, err := cableAndFormat(v.Cable, v.Format)
	if err != nil {
		return formula.CableCheckInput{}, err
	}
	return formula.CableCheckInput{Cable: cable, Format: format, PlannedDistance: v.Distance}, nil
}

type cableRouteParams struct {
	Cable   string  `param:"cable" default:"hdmi"`
	Format  string  `param:"format" default:"1080p60"`
	Length  float64 `param:"length" default:"30" validate:"min=1,max=1000"`
	Width   float64 `param:"width" default:"20" validate:"min=1,max=1000"`
	Routing string  `param:"routing" default:"wall"`
	Unit    string  `param:"unit" default:"feet"`
}

// CableRoute binds room length and width, routing, unit, cable and format.
func CableRoute(p Params) (formula.CableRouteInput, error) {
	var v cableRouteParams
	if err := Decode(p, &v); err != nil {
		return formula.CableRouteInput{}, err
	}
	cable, format, err := cableAndFormat(v.Cable, v.Format)
	if err != nil {
		return formula.CableRouteInput{}, err
	}
	routing, err := formula.ParseRouting(v.Routing)
	if err != nil {
		return formula.CableRouteInput{}, wrapEnum("routing", err)
	}
	unit, err := formula.ParseUnit(v.Unit)
	if err != nil {
		return formula.CableRouteInput{}, wrapEnum("unit", err)
	}
	return formula.CableRouteInput{
		RoomLength: v.Length,
		RoomWidth:  v.Width,
		Routing:    routing,
		Cable:      cable,
		Format:     format,
		Unit:       unit,
	}, nil
}

func cableAndFormat(cableText, formatText string) (formula.CableType, formula.SignalFormat, error) {
	cable, err := formula.ParseCableType(cableText)
	if err != nil {
		return 0, 0, wrapEnum("cable", err)
	}
	format, err := formula.ParseSignalFormat(formatText)
	if err != nil {
		return 0, 0, wrapEnum("format", err)
	}
	return cable, format, nil
}

type throwParams struct {
	HAngle      float64 `param:"h-angle" default:"90" validate:"min=10,max=180"`
	VAngle      float64 `param:"v-angle" default:"50" validate:"min=10,max=180"`
	Throw       float64 `param:"throw" default:"40" validate:"min=1,max=500"`
	Sensitivity float64 `param:"sensitivity" default:"95" validate:"min=80,max=120"`
}

// Throw binds h-angle, v-angle, throw (feet) and sensitivity.
func Throw(p Params) (formula.ThrowInput, error) {
	var v throwParams
	if err := Decode(p, &v); err != nil {
		return formula.ThrowInput{}, err
	}
	return formula.ThrowInput{
		HorizontalAngleDeg: v.HAngle,
		VerticalAngleDeg:   v.VAngle,
		ThrowDistance:      v.Throw,
		SensitivityDb:      v.Sensitivity,
	}, nil
}

type roomParams struct {
	Width  float64 `param:"width" default:"40" validate:"min=1,max=1000"`
	Length float64 `param:"length" default:"60" validate:"min=1,max=1000"`
	Mount  float64 `param:"mount" default:"10" validate:"min=1,max=100"`
	Type   string  `param:"type" default:"point"`
	Angle  float64 `param:"angle" validate:"omitempty,min=10,max=180"`
}

// Room binds width, length, mount height and a speaker type preset. An
// explicit angle overrides the preset's dispersion.
func Room(p Params) (formula.RoomInput, error) {
	var v roomParams
	if err := Decode(p, &v); err != nil {
		return formula.RoomInput{}, err
	}
	angle := v.Angle
	if angle == 0 {
		preset, err := formula.LookupSpeakerPreset(v.Type)
		if err != nil {
			return formula.RoomInput{}, wrapEnum("type", err)
		}
		angle = preset.AngleDeg
	}
	return formula.RoomInput{Width: v.Width, Length: v.Length, MountHeight: v.Mount, AngleDeg: angle}, nil
}

func wrapEnum(field string, err error) *Error {
	return &Error{Field: field, Message: err.Error()}
}
