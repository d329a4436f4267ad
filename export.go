package avtoolbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-avtoolbox/internal/bind"
	"github.com/alnah/go-avtoolbox/internal/formula"
	"github.com/alnah/go-avtoolbox/internal/graphics"
)

// Export formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Export is a rendered graphic.
type Export struct {
	Format        string
	Width, Height int
	Data          []byte
}

// Ext returns the file extension for the export, without the dot.
func (e *Export) Ext() string { return e.Format }

// ExportLowerThird renders a lower third caption from the same parameters
// as the lower-third calculator.
func (t *Toolbox) ExportLowerThird(ctx context.Context, p Params, format string) (*Export, error) {
	in, err := bind.LowerThird(p)
	if err != nil {
		return nil, fmt.Errorf("lower third: %w", err)
	}
	img, err := graphics.LowerThird(formula.LowerThird(in))
	if err != nil {
		return nil, err
	}
	return t.export(ctx, img, format)
}

// ExportSafeArea renders a safe area guide overlay from the same parameters
// as the safe-area calculator.
func (t *Toolbox) ExportSafeArea(ctx context.Context, p Params, format string) (*Export, error) {
	in, err := bind.SafeArea(p)
	if err != nil {
		return nil, fmt.Errorf("safe area: %w", err)
	}
	r := formula.SafeArea(in.Width, in.Height)
	if in.Custom() {
		r = formula.SafeAreaInsets(in.Width, in.Height, in.ActionInset, in.TitleInset)
	}
	img, err := graphics.SafeArea(r)
	if err != nil {
		return nil, err
	}
	return t.export(ctx, img, format)
}

func (t *Toolbox) export(ctx context.Context, img graphics.Image, format string) (*Export, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatSVG
	}

	out := &Export{Format: format, Width: img.Width, Height: img.Height}
	switch format {
	case FormatSVG:
		out.Data = img.SVG
	case FormatPNG:
		png, err := t.rasterizer.PNG(ctx, img)
		if err != nil {
			return nil, err
		}
		out.Data = png
	default:
		return nil, fmt.Errorf("%w: %q (want svg or png)", ErrExportFormat, format)
	}

	t.logger.Debug().
		Str("format", format).
		Int("width", img.Width).
		Int("height", img.Height).
		Int("bytes", len(out.Data)).
		Msg("graphic exported")
	return out, nil
}
