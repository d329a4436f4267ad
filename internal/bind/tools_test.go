package bind_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-avtoolbox/internal/bind"
	"github.com/alnah/go-avtoolbox/internal/formula"
)

// Notes:
// - Each binder is checked for its defaults, one override and one
//   rejection. Formula results are covered in internal/formula.

func wantFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var be *bind.Error
	if !errors.As(err, &be) {
		t.Fatalf("error = %v, want *bind.Error", err)
	}
	if be.Field != field {
		t.Errorf("Field = %q, want %q (message %q)", be.Field, field, be.Message)
	}
}

// ---------------------------------------------------------------------------
// TestStreamDelay - encoder, buffer, network, segment
// ---------------------------------------------------------------------------

func TestStreamDelay(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		got, err := bind.StreamDelay(bind.Params{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := formula.StreamDelayInput{EncoderDelayMs: 150, PlayerBufferSec: 3, NetworkLatencyMs: 50, SegmentDurationSec: 2}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("input mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-numeric encoder", func(t *testing.T) {
		t.Parallel()
		_, err := bind.StreamDelay(bind.Params{"encoder": "abc"})
		wantFieldError(t, err, "encoder")
		if !errors.Is(err, bind.ErrInvalidInput) {
			t.Error("error does not wrap ErrInvalidInput")
		}
	})

	t.Run("encoder above range", func(t *testing.T) {
		t.Parallel()
		_, err := bind.StreamDelay(bind.Params{"encoder": "6000"})
		wantFieldError(t, err, "encoder")
		if !strings.Contains(err.Error(), "encoder must be at most 5000") {
			t.Errorf("error = %q", err)
		}
	})

	t.Run("unknown parameter", func(t *testing.T) {
		t.Parallel()
		_, err := bind.StreamDelay(bind.Params{"latency": "1"})
		wantFieldError(t, err, "latency")
	})
}

// ---------------------------------------------------------------------------
// TestBitrate - enum parameters
// ---------------------------------------------------------------------------

func TestBitrate(t *testing.T) {
	t.Parallel()

	got, err := bind.Bitrate(bind.Params{"resolution": "4k", "fps": "30", "codec": "hevc", "quality": "ultra"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := formula.BitrateInput{Resolution: formula.Res4K, FPS: formula.FPS30, Codec: formula.CodecHEVC, Quality: formula.QualityUltra}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}

	def, err := bind.Bitrate(bind.Params{})
	if err != nil {
		t.Fatalf("defaults: unexpected error: %v", err)
	}
	if def.Resolution != formula.Res1080p || def.FPS != formula.FPS60 || def.Codec != formula.CodecH264 || def.Quality != formula.QualityHigh {
		t.Errorf("defaults = %+v", def)
	}

	for _, field := range []string{"resolution", "fps", "codec", "quality"} {
		_, err := bind.Bitrate(bind.Params{field: "bogus"})
		wantFieldError(t, err, field)
	}
}

// ---------------------------------------------------------------------------
// TestSafeArea - presets, explicit sizes, custom insets
// ---------------------------------------------------------------------------

func TestSafeArea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    bind.Params
		want      bind.SafeAreaInput
		wantField string
	}{
		{name: "default frame", params: bind.Params{}, want: bind.SafeAreaInput{Width: 1920, Height: 1080}},
		{name: "vertical preset", params: bind.Params{"frame": "9:16"}, want: bind.SafeAreaInput{Width: 1080, Height: 1920}},
		{name: "explicit size", params: bind.Params{"width": "1280", "height": "720"}, want: bind.SafeAreaInput{Width: 1280, Height: 720}},
		{
			name:   "custom action fills title",
			params: bind.Params{"action": "3.5"},
			want:   bind.SafeAreaInput{Width: 1920, Height: 1080, ActionInset: 3.5, TitleInset: 10},
		},
		{name: "unknown frame", params: bind.Params{"frame": "8k"}, wantField: "frame"},
		{name: "title inside action", params: bind.Params{"action": "8", "title": "4"}, wantField: "title"},
		{name: "inset out of range", params: bind.Params{"action": "30"}, wantField: "action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := bind.SafeArea(tt.params)
			if tt.wantField != "" {
				wantFieldError(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("input mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSafeAreaInput_Custom(t *testing.T) {
	t.Parallel()

	if (bind.SafeAreaInput{Width: 1, Height: 1}).Custom() {
		t.Error("zero insets reported as custom")
	}
	if !(bind.SafeAreaInput{TitleInset: 12}).Custom() {
		t.Error("title inset not reported as custom")
	}
}

// ---------------------------------------------------------------------------
// TestRTMP - platform and protocol
// ---------------------------------------------------------------------------

func TestRTMP(t *testing.T) {
	t.Parallel()

	got, err := bind.RTMP(bind.Params{"platform": "twitch", "protocol": "rtmp", "key": "live_123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := formula.RTMPInput{Platform: formula.PlatformTwitch, Protocol: formula.ProtocolRTMP, StreamKey: "live_123"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}

	_, err = bind.RTMP(bind.Params{"platform": "myspace"})
	wantFieldError(t, err, "platform")
	_, err = bind.RTMP(bind.Params{"protocol": "srt"})
	wantFieldError(t, err, "protocol")
}

// ---------------------------------------------------------------------------
// TestCountdown - duration parts
// ---------------------------------------------------------------------------

func TestCountdown(t *testing.T) {
	t.Parallel()

	got, err := bind.Countdown(bind.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(formula.CountdownInput{Minutes: 5}, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	_, err = bind.Countdown(bind.Params{"minutes": "60"})
	wantFieldError(t, err, "minutes")
	_, err = bind.Countdown(bind.Params{"hours": "1.5"})
	wantFieldError(t, err, "hours")
}

// ---------------------------------------------------------------------------
// TestLowerThird - text, accent, style
// ---------------------------------------------------------------------------

func TestLowerThird(t *testing.T) {
	t.Parallel()

	got, err := bind.LowerThird(bind.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := formula.LowerThirdInput{Name: "John Smith", Title: "Senior Producer", AccentColor: "#3B82F6", Style: formula.StyleModern}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	got, err = bind.LowerThird(bind.Params{"accent": "red", "style": "minimal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AccentColor != "red" || got.Style != formula.StyleMinimal {
		t.Errorf("got %+v, want accent passed through and minimal style", got)
	}

	_, err = bind.LowerThird(bind.Params{"style": "retro"})
	wantFieldError(t, err, "style")
}

// ---------------------------------------------------------------------------
// TestPropagation - unit-dependent temperature
// ---------------------------------------------------------------------------

func TestPropagation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    bind.Params
		want      formula.PropagationInput
		wantField string
	}{
		{name: "feet default", params: bind.Params{}, want: formula.PropagationInput{Distance: 80, Unit: formula.Feet, Temperature: 72}},
		{
			name:   "meters default temperature",
			params: bind.Params{"unit": "meters", "distance": "10"},
			want:   formula.PropagationInput{Distance: 10, Unit: formula.Meters, Temperature: 22},
		},
		{
			name:   "explicit zero temperature",
			params: bind.Params{"unit": "m", "temperature": "0"},
			want:   formula.PropagationInput{Distance: 80, Unit: formula.Meters, Temperature: 0},
		},
		{name: "celsius out of range", params: bind.Params{"unit": "meters", "temperature": "72"}, wantField: "temperature"},
		{name: "fahrenheit out of range", params: bind.Params{"temperature": "140"}, wantField: "temperature"},
		{name: "unknown unit", params: bind.Params{"unit": "yards"}, wantField: "unit"},
		{name: "lip-sync key rejected", params: bind.Params{"frames": "2"}, wantField: "frames"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := bind.Propagation(tt.params)
			if tt.wantField != "" {
				wantFieldError(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("input mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLipSync(t *testing.T) {
	t.Parallel()

	got, err := bind.LipSync(bind.Params{"distance": "100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := formula.LipSyncInput{
		PropagationInput: formula.PropagationInput{Distance: 100, Unit: formula.Feet, Temperature: 72},
		FrameDelay:       2,
		CameraLatencyMs:  40,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}

	_, err = bind.LipSync(bind.Params{"camera": "-5"})
	wantFieldError(t, err, "camera")
}

// ---------------------------------------------------------------------------
// TestAspect - size and resize target
// ---------------------------------------------------------------------------

func TestAspect(t *testing.T) {
	t.Parallel()

	got, err := bind.Aspect(bind.Params{"target-width": "1280"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := bind.AspectInput{AspectInput: formula.AspectInput{Width: 1920, Height: 1080}, TargetWidth: 1280}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}

	_, err = bind.Aspect(bind.Params{"width": "0"})
	wantFieldError(t, err, "width")
	_, err = bind.Aspect(bind.Params{"target-width": "1280", "target-height": "720"})
	wantFieldError(t, err, "target-height")
}

// ---------------------------------------------------------------------------
// TestCable - check and route
// ---------------------------------------------------------------------------

func TestCableCheck(t *testing.T) {
	t.Parallel()

	got, err := bind.CableCheck(bind.Params{"cable": "sdi", "format": "4k60", "distance": "250"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := formula.CableCheckInput{Cable: formula.CableSDI, Format: formula.Format4K60, PlannedDistance: 250}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}

	_, err = bind.CableCheck(bind.Params{"cable": "vga"})
	wantFieldError(t, err, "cable")
	_, err = bind.CableCheck(bind.Params{"distance": "0"})
	wantFieldError(t, err, "distance")
}

func TestCableRoute(t *testing.T) {
	t.Parallel()

	got, err := bind.CableRoute(bind.Params{"routing": "ceiling", "unit": "meters", "length": "10", "width": "8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := formula.CableRouteInput{
		RoomLength: 10,
		RoomWidth:  8,
		Routing:    formula.RouteCeiling,
		Cable:      formula.CableHDMI,
		Format:     formula.Format1080p60,
		Unit:       formula.Meters,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}

	_, err = bind.CableRoute(bind.Params{"routing": "tunnel"})
	wantFieldError(t, err, "routing")
}

// ---------------------------------------------------------------------------
// TestSpeaker - throw and room
// ---------------------------------------------------------------------------

func TestThrow(t *testing.T) {
	t.Parallel()

	got, err := bind.Throw(bind.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := formula.ThrowInput{HorizontalAngleDeg: 90, VerticalAngleDeg: 50, ThrowDistance: 40, SensitivityDb: 95}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	_, err = bind.Throw(bind.Params{"h-angle": "5"})
	wantFieldError(t, err, "h-angle")
}

func TestRoom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    bind.Params
		wantAngle float64
		wantField string
	}{
		{name: "default preset", params: bind.Params{}, wantAngle: 90},
		{name: "column preset", params: bind.Params{"type": "column"}, wantAngle: 120},
		{name: "angle overrides preset", params: bind.Params{"type": "wide", "angle": "60"}, wantAngle: 60},
		{name: "unknown preset", params: bind.Params{"type": "horn"}, wantField: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := bind.Room(tt.params)
			if tt.wantField != "" {
				wantFieldError(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.AngleDeg != tt.wantAngle {
				t.Errorf("AngleDeg = %v, want %v", got.AngleDeg, tt.wantAngle)
			}
			if got.Width != 40 || got.Length != 60 || got.MountHeight != 10 {
				t.Errorf("dimensions = %+v", got)
			}
		})
	}
}
