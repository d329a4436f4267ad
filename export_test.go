package avtoolbox

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alnah/go-avtoolbox/internal/graphics"
)

// fakeRasterizer records PNG calls instead of starting Chrome.
type fakeRasterizer struct {
	mu     sync.Mutex
	calls  []graphics.Image
	err    error
	closed bool
}

func (f *fakeRasterizer) PNG(_ context.Context, img graphics.Image) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, img)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("\x89PNG\r\n\x1a\n"), nil
}

func (f *fakeRasterizer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// ---------------------------------------------------------------------------
// TestExportLowerThird - caption graphics
// ---------------------------------------------------------------------------

func TestExportLowerThird(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		format    string
		wantSVG   bool
		wantCalls int
	}{
		{name: "default is svg", format: "", wantSVG: true},
		{name: "svg", format: "svg", wantSVG: true},
		{name: "png case insensitive", format: "PNG", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := &fakeRasterizer{}
			tb := newTestToolbox(t, withRasterizer(fake))

			got, err := tb.ExportLowerThird(context.Background(), Params{"name": "Ada Lovelace"}, tt.format)
			if err != nil {
				t.Fatalf("ExportLowerThird() error = %v", err)
			}
			if got.Width != graphics.LowerThirdWidth || got.Height != graphics.LowerThirdHeight {
				t.Errorf("size = %dx%d", got.Width, got.Height)
			}
			if isSVG := bytes.HasPrefix(got.Data, []byte("<svg")); isSVG != tt.wantSVG {
				t.Errorf("svg output = %v, want %v", isSVG, tt.wantSVG)
			}
			if tt.wantSVG && !bytes.Contains(got.Data, []byte("Ada Lovelace")) {
				t.Error("svg does not contain the name")
			}
			if len(fake.calls) != tt.wantCalls {
				t.Errorf("rasterizer calls = %d, want %d", len(fake.calls), tt.wantCalls)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExportSafeArea - guide overlays
// ---------------------------------------------------------------------------

func TestExportSafeArea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
		w, h   int
		label  string
	}{
		{name: "preset", params: Params{"frame": "4k"}, w: 3840, h: 2160, label: "3456x1944"},
		{name: "custom insets", params: Params{"action": "3.5", "title": "5"}, w: 1920, h: 1080, label: "TITLE SAFE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestToolbox(t).ExportSafeArea(context.Background(), tt.params, FormatSVG)
			if err != nil {
				t.Fatalf("ExportSafeArea() error = %v", err)
			}
			if got.Width != tt.w || got.Height != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", got.Width, got.Height, tt.w, tt.h)
			}
			if !bytes.Contains(got.Data, []byte(tt.label)) {
				t.Errorf("svg missing %q", tt.label)
			}
			if got.Ext() != "svg" {
				t.Errorf("Ext() = %q", got.Ext())
			}
		})
	}
}

func TestExport_Errors(t *testing.T) {
	t.Parallel()

	errBrowser := errors.New("no chrome")

	tests := []struct {
		name    string
		export  func(tb *Toolbox) error
		wantErr error
	}{
		{
			name: "unknown format",
			export: func(tb *Toolbox) error {
				_, err := tb.ExportLowerThird(context.Background(), nil, "gif")
				return err
			},
			wantErr: ErrExportFormat,
		},
		{
			name: "invalid params",
			export: func(tb *Toolbox) error {
				_, err := tb.ExportSafeArea(context.Background(), Params{"frame": "8k"}, FormatSVG)
				return err
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "rasterizer failure",
			export: func(tb *Toolbox) error {
				_, err := tb.ExportSafeArea(context.Background(), nil, FormatPNG)
				return err
			},
			wantErr: errBrowser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tb := newTestToolbox(t, withRasterizer(&fakeRasterizer{err: errBrowser}))
			if err := tt.export(tb); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
