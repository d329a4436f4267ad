package avtoolbox

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alnah/go-avtoolbox/internal/bind"
	"github.com/alnah/go-avtoolbox/internal/catalog"
	"github.com/alnah/go-avtoolbox/internal/display"
	"github.com/alnah/go-avtoolbox/internal/formula"
)

// Params are raw calculator inputs keyed by parameter name, as typed by a
// user. Missing keys take the tool's defaults.
type Params = bind.Params

// Field is one labeled output value of a Result.
type Field = display.Field

// ComingSoon is the message of results for tools that are not available.
const ComingSoon = "This tool is coming soon."

// Result is the outcome of one calculation.
type Result struct {
	Tool      catalog.ToolID `json:"tool" yaml:"tool"`
	Available bool           `json:"available" yaml:"available"`
	Message   string         `json:"message,omitempty" yaml:"message,omitempty"`
	Mode      string         `json:"mode,omitempty" yaml:"mode,omitempty"`
	Fields    []Field        `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Value is the typed formula result, e.g. formula.BitrateResult.
	Value any `json:"-" yaml:"-"`
}

// Field returns the field with the given label.
func (r *Result) Field(label string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}

// RevealSecrets replaces masked values, such as the RTMP stream key, with
// their clear text.
func (r *Result) RevealSecrets() {
	res, ok := r.Value.(formula.RTMPResult)
	if !ok {
		return
	}
	for i := range r.Fields {
		if r.Fields[i].Label == labelStreamURL {
			r.Fields[i].Value = res.FullURL
		}
	}
}

func unavailable(id catalog.ToolID) *Result {
	return &Result{Tool: id, Available: false, Message: ComingSoon}
}

// CalculateSlug resolves slug (full or short, e.g. "bitrate") and runs the
// tool. Unknown slugs give the coming soon result, not an error.
func (t *Toolbox) CalculateSlug(ctx context.Context, slug string, p Params) (*Result, error) {
	id, err := catalog.ParseToolID(slug)
	if err != nil {
		t.logger.Debug().Str("slug", slug).Msg("unknown tool slug")
		return unavailable(0), nil
	}
	return t.Calculate(ctx, id, p)
}

// Calculate runs tool id on p. Parameter errors wrap ErrInvalidInput and
// name the offending field. An id outside the tool set gives the coming
// soon result and no error.
func (t *Toolbox) Calculate(ctx context.Context, id catalog.ToolID, p Params) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p == nil {
		p = Params{}
	}

	var (
		res *Result
		err error
	)
	switch id {
	case catalog.StreamDelay:
		res, err = calcStreamDelay(p)
	case catalog.Bitrate:
		res, err = calcBitrate(p)
	case catalog.SafeArea:
		res, err = calcSafeArea(p)
	case catalog.RTMP:
		res, err = calcRTMP(p)
	case catalog.Countdown:
		res, err = calcCountdown(p)
	case catalog.LowerThird:
		res, err = calcLowerThird(p)
	case catalog.AudioDelay:
		res, err = calcAudioDelay(p)
	case catalog.AspectRatio:
		res, err = calcAspect(p)
	case catalog.CableLength:
		res, err = calcCable(p)
	case catalog.SpeakerCoverage:
		res, err = calcSpeaker(p)
	default:
		return unavailable(id), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}

	res.Tool, res.Available = id, true
	t.logger.Debug().Stringer("tool", id).Str("mode", res.Mode).Int("fields", len(res.Fields)).Msg("calculated")
	return res, nil
}

var num = display.English

const labelStreamURL = "Stream URL"

func field(label, value, unit string) Field {
	return Field{Label: label, Value: value, Unit: unit}
}

func highlight(label, value, unit string) Field {
	return Field{Label: label, Value: value, Unit: unit, Highlight: true}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func calcStreamDelay(p Params) (*Result, error) {
	in, err := bind.StreamDelay(p)
	if err != nil {
		return nil, err
	}
	r := formula.StreamDelay(in)

	fields := []Field{
		highlight("Total Delay", num.Float(r.TotalSec(), 1), "s"),
		field("Total Delay (ms)", num.Float(r.TotalMs, 0), "ms"),
	}
	for _, s := range r.Stages {
		fields = append(fields, field(s.Name, num.Float(s.Ms, 0), "ms ("+num.Float(s.Share, 1)+"%)"))
	}
	return &Result{Fields: fields, Value: r}, nil
}

func calcBitrate(p Params) (*Result, error) {
	mode, p, err := bind.Variant(p, "single", "ladder")
	if err != nil {
		return nil, err
	}
	in, err := bind.Bitrate(p)
	if err != nil {
		return nil, err
	}

	if mode == "ladder" {
		rungs := formula.Ladder(in.FPS, in.Codec, in.Quality)
		fields := make([]Field, 0, len(rungs))
		for _, rung := range rungs {
			v, unit := formula.FormatBitrate(rung.TotalKbps)
			fields = append(fields, Field{
				Label:     rung.Resolution.String(),
				Value:     v,
				Unit:      unit,
				Highlight: rung.Resolution == in.Resolution,
			})
		}
		return &Result{Mode: mode, Fields: fields, Value: rungs}, nil
	}

	r := formula.Bitrate(in)
	video, videoUnit := formula.FormatBitrate(r.VideoKbps)
	total, totalUnit := formula.FormatBitrate(r.TotalKbps)
	upload, uploadUnit := formula.FormatBitrate(r.MinUploadKbps)
	return &Result{Mode: mode, Value: r, Fields: []Field{
		field("Video Bitrate", video, videoUnit),
		field("Audio Bitrate", strconv.Itoa(r.AudioKbps), "kbps"),
		highlight("Total Bitrate", total, totalUnit),
		field("Minimum Upload", upload, uploadUnit),
	}}, nil
}

func calcSafeArea(p Params) (*Result, error) {
	in, err := bind.SafeArea(p)
	if err != nil {
		return nil, err
	}
	var r formula.SafeAreaResult
	if in.Custom() {
		r = formula.SafeAreaInsets(in.Width, in.Height, in.ActionInset, in.TitleInset)
	} else {
		r = formula.SafeArea(in.Width, in.Height)
	}

	at := func(rect formula.Rect) string { return fmt.Sprintf("at %d,%d", rect.X, rect.Y) }
	return &Result{Value: r, Fields: []Field{
		field("Frame", r.Frame.String(), "px"),
		field("Action Safe", r.Action.String(), "px "+at(r.Action)),
		highlight("Title Safe", r.Title.String(), "px "+at(r.Title)),
		field("Title Margin", num.Int(int64(r.MarginPx)), "px"),
	}}, nil
}

func calcRTMP(p Params) (*Result, error) {
	in, err := bind.RTMP(p)
	if err != nil {
		return nil, err
	}
	r := formula.RTMP(in)

	server := r.ServerURL
	if server == "" {
		server = formula.Undefined
	}
	stream := r.Masked()
	if stream == "" {
		stream = formula.Undefined
	}
	return &Result{Value: r, Fields: []Field{
		field("Platform", in.Platform.String(), ""),
		field("Server URL", server, ""),
		highlight(labelStreamURL, stream, ""),
	}}, nil
}

func calcCountdown(p Params) (*Result, error) {
	in, err := bind.Countdown(p)
	if err != nil {
		return nil, err
	}
	r := formula.Countdown(in)
	return &Result{Value: r, Fields: []Field{
		highlight("Duration", r.Clock(), ""),
		field("Total Seconds", num.Int(int64(r.TotalSeconds)), "s"),
		field("Live Display", formula.Remaining(r.TotalMs), ""),
	}}, nil
}

func calcLowerThird(p Params) (*Result, error) {
	in, err := bind.LowerThird(p)
	if err != nil {
		return nil, err
	}
	r := formula.LowerThird(in)
	return &Result{Value: r, Fields: []Field{
		highlight("Template", num.Title(r.Style.String()), ""),
		field("Name", r.Name, ""),
		field("Title", r.Title, ""),
		field("Accent Color", r.AccentColor, ""),
	}}, nil
}

func calcAudioDelay(p Params) (*Result, error) {
	mode, p, err := bind.Variant(p, "propagation", "lipsync")
	if err != nil {
		return nil, err
	}

	if mode == "lipsync" {
		in, err := bind.LipSync(p)
		if err != nil {
			return nil, err
		}
		r := formula.LipSync(in)
		return &Result{Mode: mode, Value: r, Fields: []Field{
			field("Sound Travel", num.Quantity(r.SoundTravelMs, 1), "ms"),
			field("Video Delay", num.Float(r.VideoDelayMs, 1), "ms"),
			highlight("Audio Delay To Add", num.Quantity(r.AudioDelayToAddMs, 1), "ms"),
			field("Sync Status", r.Status.String(), ""),
		}}, nil
	}

	in, err := bind.Propagation(p)
	if err != nil {
		return nil, err
	}
	r := formula.Propagation(in)
	return &Result{Mode: mode, Value: r, Fields: []Field{
		field("Speed of Sound", num.Quantity(r.SpeedOfSound, 1), in.Unit.Abbrev()+"/s"),
		highlight("Delay", num.Quantity(r.DelayMs, 2), "ms"),
		field("Recommended Delay", num.Quantity(r.RecommendedMs, 1), "ms"),
	}}, nil
}

func calcAspect(p Params) (*Result, error) {
	in, err := bind.Aspect(p)
	if err != nil {
		return nil, err
	}
	r := formula.Aspect(in.AspectInput)

	nearest := formula.Undefined
	if r.HasNearest {
		nearest = r.Nearest.Label
	}
	fields := []Field{
		highlight("Aspect Ratio", r.Ratio(), ""),
		field("Decimal", num.Quantity(r.Decimal, 3), ""),
		field("Nearest Standard", nearest, ""),
		field("Exact Match", yesNo(r.ExactMatch), ""),
		field("Total Pixels", num.Int(int64(r.TotalPixels)), ""),
		field("Megapixels", num.Float(r.Megapixels, 2), "MP"),
	}
	switch {
	case in.TargetWidth > 0:
		h := formula.ResizeWidth(in.Width, in.Height, in.TargetWidth)
		fields = append(fields, field("Resized", fmt.Sprintf("%dx%s", in.TargetWidth, h.Fixed(0)), "px"))
	case in.TargetHeight > 0:
		w := formula.ResizeHeight(in.Width, in.Height, in.TargetHeight)
		fields = append(fields, field("Resized", fmt.Sprintf("%sx%d", w.Fixed(0), in.TargetHeight), "px"))
	}
	return &Result{Value: r, Fields: fields}, nil
}

func calcCable(p Params) (*Result, error) {
	mode, p, err := bind.Variant(p, "check", "route")
	if err != nil {
		return nil, err
	}

	if mode == "route" {
		in, err := bind.CableRoute(p)
		if err != nil {
			return nil, err
		}
		r := formula.CableRoute(in)
		u := in.Unit.Abbrev()
		fields := []Field{
			field("Room Diagonal", num.Float(r.Diagonal, 1), u),
			field("Estimated Run", num.Float(r.Estimated, 1), u),
			field("With Slack", num.Float(r.WithSlack, 1), u),
			highlight("Recommended Length", num.Float(r.Recommended, 0), u),
			field("Max Distance", num.Float(r.MaxDistance, 1), u),
			field("Within Limit", yesNo(r.WithinLimit), ""),
		}
		if r.Note != "" {
			fields = append(fields, field("Note", r.Note, ""))
		}
		return &Result{Mode: mode, Value: r, Fields: fields}, nil
	}

	in, err := bind.CableCheck(p)
	if err != nil {
		return nil, err
	}
	r := formula.CableCheck(in)
	fields := []Field{
		field("Max Distance", num.Float(r.MaxDistance, 0), "ft"),
		field("Planned Distance", num.Float(in.PlannedDistance, 0), "ft"),
		highlight("Within Limit", yesNo(r.WithinLimit), ""),
		field("Capacity Used", num.Float(r.PercentUsed, 0), "%"),
	}
	if r.Advice != "" {
		fields = append(fields, field("Advice", r.Advice, ""))
	}
	fields = append(fields, field("Note", in.Cable.Note(), ""))
	return &Result{Mode: mode, Value: r, Fields: fields}, nil
}

func calcSpeaker(p Params) (*Result, error) {
	mode, p, err := bind.Variant(p, "throw", "room")
	if err != nil {
		return nil, err
	}

	if mode == "room" {
		in, err := bind.Room(p)
		if err != nil {
			return nil, err
		}
		r := formula.Room(in)
		if !r.Defined {
			return &Result{Mode: mode, Value: r, Fields: []Field{
				highlight("Speakers", formula.Undefined, ""),
				field("Coverage Radius", num.Float(r.CoverageRadius, 1), "ft"),
			}}, nil
		}
		return &Result{Mode: mode, Value: r, Fields: []Field{
			highlight("Speakers", strconv.Itoa(r.Speakers), fmt.Sprintf("(%d x %d grid)", r.GridWidth, r.GridLength)),
			field("Coverage Radius", num.Float(r.CoverageRadius, 1), "ft"),
			field("Area per Speaker", num.Float(r.CoverageArea, 0), "sq ft"),
			field("Room Area", num.Float(r.RoomArea, 0), "sq ft"),
			field("Spacing (Width)", num.Float(r.SpacingWidth, 1), "ft"),
			field("Spacing (Length)", num.Float(r.SpacingLength, 1), "ft"),
			field("Coverage", num.Quantity(r.CoveragePercent, 0), "%"),
		}}, nil
	}

	in, err := bind.Throw(p)
	if err != nil {
		return nil, err
	}
	r := formula.Throw(in)
	return &Result{Mode: mode, Value: r, Fields: []Field{
		field("Coverage Width", num.Float(r.CoverageWidth, 1), "ft"),
		field("Coverage Height", num.Float(r.CoverageHeight, 1), "ft"),
		field("Coverage Area", num.Float(r.CoverageArea, 0), "sq ft"),
		highlight("SPL at Distance", num.Quantity(r.SPL, 1), "dB"),
	}}, nil
}
