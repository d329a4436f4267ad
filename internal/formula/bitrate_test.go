package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestBitrate - recommended rates
// ---------------------------------------------------------------------------

func TestBitrate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   BitrateInput
		want BitrateResult
	}{
		{
			name: "1080p60 H.264 high",
			in:   BitrateInput{Resolution: Res1080p, FPS: FPS60, Codec: CodecH264, Quality: QualityHigh},
			want: BitrateResult{VideoKbps: 6000, AudioKbps: 128, TotalKbps: 6128, MinUploadKbps: 7966},
		},
		{
			name: "4K30 HEVC ultra",
			in:   BitrateInput{Resolution: Res4K, FPS: FPS30, Codec: CodecHEVC, Quality: QualityUltra},
			want: BitrateResult{VideoKbps: 12096, AudioKbps: 128, TotalKbps: 12224, MinUploadKbps: 15891},
		},
		{
			name: "720p24 AV1 low",
			in:   BitrateInput{Resolution: Res720p, FPS: FPS24, Codec: CodecAV1, Quality: QualityLow},
			want: BitrateResult{VideoKbps: 525, AudioKbps: 128, TotalKbps: 653, MinUploadKbps: 849},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, Bitrate(tt.in)); diff != "" {
				t.Errorf("Bitrate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBitrate_Monotonic(t *testing.T) {
	t.Parallel()

	// Raising any one of resolution, frame rate or quality never lowers the video rate.
	fps := []FrameRate{FPS24, FPS25, FPS30, FPS50, FPS60}
	qualities := []Quality{QualityLow, QualityMedium, QualityHigh, QualityUltra}

	for _, c := range []Codec{CodecH264, CodecHEVC, CodecAV1, CodecVP9} {
		for ri := 1; ri < len(Resolutions); ri++ {
			lo := Bitrate(BitrateInput{Resolution: Resolutions[ri-1], FPS: FPS60, Codec: c, Quality: QualityHigh})
			hi := Bitrate(BitrateInput{Resolution: Resolutions[ri], FPS: FPS60, Codec: c, Quality: QualityHigh})
			if hi.VideoKbps < lo.VideoKbps {
				t.Errorf("%v: %v video %d < %v video %d", c, Resolutions[ri], hi.VideoKbps, Resolutions[ri-1], lo.VideoKbps)
			}
		}
		for fi := 1; fi < len(fps); fi++ {
			lo := Bitrate(BitrateInput{Resolution: Res1080p, FPS: fps[fi-1], Codec: c, Quality: QualityHigh})
			hi := Bitrate(BitrateInput{Resolution: Res1080p, FPS: fps[fi], Codec: c, Quality: QualityHigh})
			if hi.VideoKbps < lo.VideoKbps {
				t.Errorf("%v: %dfps video %d < %dfps video %d", c, fps[fi], hi.VideoKbps, fps[fi-1], lo.VideoKbps)
			}
		}
		for qi := 1; qi < len(qualities); qi++ {
			lo := Bitrate(BitrateInput{Resolution: Res1080p, FPS: FPS60, Codec: c, Quality: qualities[qi-1]})
			hi := Bitrate(BitrateInput{Resolution: Res1080p, FPS: FPS60, Codec: c, Quality: qualities[qi]})
			if hi.VideoKbps < lo.VideoKbps {
				t.Errorf("%v: %v video %d < %v video %d", c, qualities[qi], hi.VideoKbps, qualities[qi-1], lo.VideoKbps)
			}
		}
	}
}

func TestBitrate_CodecOrdering(t *testing.T) {
	t.Parallel()

	// AV1 < HEVC < VP9 < H.264 at every resolution, frame rate and quality.
	codecs := []Codec{CodecAV1, CodecHEVC, CodecVP9, CodecH264}
	for _, r := range Resolutions {
		for _, fps := range []FrameRate{FPS24, FPS25, FPS30, FPS50, FPS60} {
			for _, q := range []Quality{QualityLow, QualityMedium, QualityHigh, QualityUltra} {
				prev := 0
				for i, c := range codecs {
					got := Bitrate(BitrateInput{Resolution: r, FPS: fps, Codec: c, Quality: q}).VideoKbps
					if i > 0 && got <= prev {
						t.Errorf("%v %dfps %v: %v video %d, want more than %v video %d", r, fps, q, c, got, codecs[i-1], prev)
					}
					prev = got
				}
			}
		}
	}
}

func TestLadder(t *testing.T) {
	t.Parallel()

	rungs := Ladder(FPS60, CodecH264, QualityHigh)
	if len(rungs) != len(Resolutions) {
		t.Fatalf("len(Ladder) = %d, want %d", len(rungs), len(Resolutions))
	}
	want := []int{3000, 6000, 10000, 18000}
	for i, r := range rungs {
		if r.Resolution != Resolutions[i] || r.VideoKbps != want[i] {
			t.Errorf("rung %d = %v/%d, want %v/%d", i, r.Resolution, r.VideoKbps, Resolutions[i], want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestFormatBitrate - display scaling
// ---------------------------------------------------------------------------

func TestFormatBitrate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kbps      int
		wantValue string
		wantUnit  string
	}{
		{6128, "6.1", "Mbps"},
		{1000, "1.0", "Mbps"},
		{999, "999", "kbps"},
		{128, "128", "kbps"},
	}

	for _, tt := range tests {
		value, unit := FormatBitrate(tt.kbps)
		if value != tt.wantValue || unit != tt.wantUnit {
			t.Errorf("FormatBitrate(%d) = (%q, %q), want (%q, %q)", tt.kbps, value, unit, tt.wantValue, tt.wantUnit)
		}
	}
}

// ---------------------------------------------------------------------------
// TestParse* - enum parsing
// ---------------------------------------------------------------------------

func TestParseBitrateEnums(t *testing.T) {
	t.Parallel()

	if r, err := ParseResolution("4k"); err != nil || r != Res4K {
		t.Errorf("ParseResolution(4k) = %v, %v", r, err)
	}
	if _, err := ParseResolution("8K"); err == nil {
		t.Error("ParseResolution(8K) error = nil, want error")
	}
	if f, err := ParseFrameRate("30fps"); err != nil || f != FPS30 {
		t.Errorf("ParseFrameRate(30fps) = %v, %v", f, err)
	}
	if _, err := ParseFrameRate("48"); err == nil {
		t.Error("ParseFrameRate(48) error = nil, want error")
	}
	if c, err := ParseCodec("hevc"); err != nil || c != CodecHEVC {
		t.Errorf("ParseCodec(hevc) = %v, %v", c, err)
	}
	if c, err := ParseCodec("H.264"); err != nil || c != CodecH264 {
		t.Errorf("ParseCodec(H.264) = %v, %v", c, err)
	}
	if q, err := ParseQuality("ULTRA"); err != nil || q != QualityUltra {
		t.Errorf("ParseQuality(ULTRA) = %v, %v", q, err)
	}
}
