package assets

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestValidateName - asset name rules
// ---------------------------------------------------------------------------

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "simple", in: "default"},
		{name: "hyphenated", in: "high-contrast"},
		{name: "underscore", in: "my_style"},
		{name: "empty", in: "", wantErr: true},
		{name: "slash", in: "a/b", wantErr: true},
		{name: "backslash", in: `a\b`, wantErr: true},
		{name: "traversal", in: "..", wantErr: true},
		{name: "extension", in: "default.css", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateName(%q) = %v, want ErrInvalidAssetName", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateName(%q) unexpected error: %v", tt.in, err)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !IsNotFound(ErrStyleNotFound) || !IsNotFound(ErrTemplateSetNotFound) {
		t.Error("not-found sentinels not recognised")
	}
	if IsNotFound(ErrIncompleteTemplateSet) || IsNotFound(ErrAssetRead) {
		t.Error("other errors reported as not found")
	}
}
