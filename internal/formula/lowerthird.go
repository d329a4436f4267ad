package formula

import (
	"fmt"
	"regexp"
	"strings"
)

// LowerThirdStyle selects one of the fixed graphic templates.
type LowerThirdStyle int

// Lower third templates.
const (
	StyleModern LowerThirdStyle = iota
	StyleClassic
	StyleMinimal
)

// LowerThirdStyles lists every template.
var LowerThirdStyles = []LowerThirdStyle{StyleModern, StyleClassic, StyleMinimal}

var styleNames = [...]string{
	StyleModern:  "modern",
	StyleClassic: "classic",
	StyleMinimal: "minimal",
}

// String returns the template key.
func (s LowerThirdStyle) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("LowerThirdStyle(%d)", int(s))
	}
	return styleNames[s]
}

// ParseLowerThirdStyle accepts "modern", "classic" or "minimal".
func ParseLowerThirdStyle(s string) (LowerThirdStyle, error) {
	for i, name := range styleNames {
		if strings.EqualFold(s, name) {
			return LowerThirdStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lower third style %q (want modern, classic, minimal)", s)
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether s is #RGB or #RRGGBB.
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// DefaultAccentColor is used when the accent color is not a hex color.
const DefaultAccentColor = "#3B82F6"

// LowerThirdInput is the text and styling of a name caption.
type LowerThirdInput struct {
	Name        string
	Title       string
	AccentColor string
	Style       LowerThirdStyle
}

// LowerThirdResult is a resolved template selection.
type LowerThirdResult struct {
	Style       LowerThirdStyle
	Name        string
	Title       string // as displayed; uppercased by the modern template
	AccentColor string
}

// LowerThird picks a template and prepares its text. Invalid colors fall
// back to DefaultAccentColor and unknown styles to StyleModern.
func LowerThird(in LowerThirdInput) LowerThirdResult {
	style := in.Style
	if style < 0 || int(style) >= len(styleNames) {
		style = StyleModern
	}
	accent := in.AccentColor
	if !IsHexColor(accent) {
		accent = DefaultAccentColor
	}
	title := in.Title
	if style == StyleModern {
		title = strings.ToUpper(title)
	}
	return LowerThirdResult{Style: style, Name: in.Name, Title: title, AccentColor: accent}
}
