package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestLowerThird - template selection
// ---------------------------------------------------------------------------

func TestLowerThird(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   LowerThirdInput
		want LowerThirdResult
	}{
		{
			name: "modern uppercases title",
			in:   LowerThirdInput{Name: "John Smith", Title: "Senior Producer", AccentColor: "#3B82F6", Style: StyleModern},
			want: LowerThirdResult{Style: StyleModern, Name: "John Smith", Title: "SENIOR PRODUCER", AccentColor: "#3B82F6"},
		},
		{
			name: "classic keeps title case",
			in:   LowerThirdInput{Name: "Ana", Title: "Host", AccentColor: "#f00", Style: StyleClassic},
			want: LowerThirdResult{Style: StyleClassic, Name: "Ana", Title: "Host", AccentColor: "#f00"},
		},
		{
			name: "invalid color falls back",
			in:   LowerThirdInput{Name: "A", Title: "B", AccentColor: "blue", Style: StyleMinimal},
			want: LowerThirdResult{Style: StyleMinimal, Name: "A", Title: "B", AccentColor: DefaultAccentColor},
		},
		{
			name: "unknown style falls back to modern",
			in:   LowerThirdInput{Name: "A", Title: "b", AccentColor: "#000000", Style: LowerThirdStyle(9)},
			want: LowerThirdResult{Style: StyleModern, Name: "A", Title: "B", AccentColor: "#000000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, LowerThird(tt.in)); diff != "" {
				t.Errorf("LowerThird() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsHexColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"#3B82F6", true},
		{"#abc", true},
		{"#ABCD", false},
		{"3B82F6", false},
		{"#GGGGGG", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsHexColor(tt.in); got != tt.want {
			t.Errorf("IsHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLowerThirdStyle(t *testing.T) {
	t.Parallel()

	for _, s := range LowerThirdStyles {
		got, err := ParseLowerThirdStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseLowerThirdStyle(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseLowerThirdStyle("neon"); err == nil {
		t.Error("ParseLowerThirdStyle(neon) error = nil, want error")
	}
}
