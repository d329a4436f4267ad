package formula

import "testing"

// ---------------------------------------------------------------------------
// TestPropagation - acoustic travel time
// ---------------------------------------------------------------------------

func TestPropagation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        PropagationInput
		wantDelay string
		wantRec   string
		wantSpeed string
	}{
		{
			name:      "80 ft at 72F",
			in:        PropagationInput{Distance: 80, Unit: Feet, Temperature: 72},
			wantDelay: "70.7",
			wantRec:   "80.7",
			wantSpeed: "1131.6",
		},
		{
			name:      "10 m at 20C",
			in:        PropagationInput{Distance: 10, Unit: Meters, Temperature: 20},
			wantDelay: "29.1",
			wantRec:   "39.1",
			wantSpeed: "343.4",
		},
		{
			name:      "zero distance",
			in:        PropagationInput{Distance: 0, Unit: Feet, Temperature: 72},
			wantDelay: "0.0",
			wantRec:   "10.0",
			wantSpeed: "1131.6",
		},
		{
			name:      "non-positive speed is undefined",
			in:        PropagationInput{Distance: 80, Unit: Feet, Temperature: -1000},
			wantDelay: Undefined,
			wantRec:   Undefined,
			wantSpeed: Undefined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Propagation(tt.in)
			if s := got.DelayMs.Fixed(1); s != tt.wantDelay {
				t.Errorf("DelayMs = %s, want %s", s, tt.wantDelay)
			}
			if s := got.RecommendedMs.Fixed(1); s != tt.wantRec {
				t.Errorf("RecommendedMs = %s, want %s", s, tt.wantRec)
			}
			if s := got.SpeedOfSound.Fixed(1); s != tt.wantSpeed {
				t.Errorf("SpeedOfSound = %s, want %s", s, tt.wantSpeed)
			}
		})
	}
}

func TestPropagation_Monotonic(t *testing.T) {
	t.Parallel()

	prev := -1.0
	for d := 0.0; d <= 1000; d += 50 {
		got := Propagation(PropagationInput{Distance: d, Unit: Feet, Temperature: 72}).DelayMs.Or(-1)
		if got <= prev {
			t.Fatalf("delay at %v ft = %v, want > %v", d, got, prev)
		}
		prev = got
	}
}

// ---------------------------------------------------------------------------
// TestLipSync - audio delay to match video
// ---------------------------------------------------------------------------

func TestLipSync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		distance   float64
		wantAdd    string
		wantStatus SyncStatus
	}{
		{name: "short throw needs correction", distance: 30, wantAdd: "80.2", wantStatus: SyncNeedsCorrection},
		{name: "slight offset", distance: 100, wantAdd: "18.3", wantStatus: SyncSlightOffset},
		{name: "nearly in sync", distance: 120, wantAdd: "0.6", wantStatus: SyncInSync},
		{name: "sound slower than video clamps to zero", distance: 500, wantAdd: "0.0", wantStatus: SyncInSync},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := LipSync(LipSyncInput{
				PropagationInput: PropagationInput{Distance: tt.distance, Unit: Feet, Temperature: 72},
				FrameDelay:       2,
				CameraLatencyMs:  40,
			})
			if !approx(got.VideoDelayMs, 106.6667, 1e-3) {
				t.Errorf("VideoDelayMs = %v, want ~106.667", got.VideoDelayMs)
			}
			if s := got.AudioDelayToAddMs.Fixed(1); s != tt.wantAdd {
				t.Errorf("AudioDelayToAddMs = %s, want %s", s, tt.wantAdd)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestLipSync_Undetermined(t *testing.T) {
	t.Parallel()

	got := LipSync(LipSyncInput{
		PropagationInput: PropagationInput{Distance: 30, Unit: Meters, Temperature: -600},
		FrameDelay:       2,
	})
	if got.Status != SyncUndetermined {
		t.Errorf("Status = %v, want %v", got.Status, SyncUndetermined)
	}
	if got.AudioDelayToAddMs.IsDefined() {
		t.Error("AudioDelayToAddMs is defined, want undefined")
	}
}

func TestGradeSync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ms   float64
		want SyncStatus
	}{
		{0, SyncInSync},
		{4.99, SyncInSync},
		{5, SyncSlightOffset},
		{29.9, SyncSlightOffset},
		{30, SyncNeedsCorrection},
	}

	for _, tt := range tests {
		if got := GradeSync(tt.ms); got != tt.want {
			t.Errorf("GradeSync(%v) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	if u, err := ParseUnit("m"); err != nil || u != Meters {
		t.Errorf("ParseUnit(m) = %v, %v", u, err)
	}
	if u, err := ParseUnit("Feet"); err != nil || u != Feet {
		t.Errorf("ParseUnit(Feet) = %v, %v", u, err)
	}
	if _, err := ParseUnit("yards"); err == nil {
		t.Error("ParseUnit(yards) error = nil, want error")
	}
}
