// Package graphics draws the preview graphics of the production tools as
// SVG: the lower third caption templates and the safe-area overlay.
//
// Documents come from embedded text templates. Every interpolated string
// passes through XML escaping, so names and titles may contain any text.
package graphics
