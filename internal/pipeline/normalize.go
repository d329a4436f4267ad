package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders are Private Use Area runes; goldmark passes them
// through untouched so <mark> can be added without unsafe HTML.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// Normalize converts line endings to \n and collapses runs of blank lines.
func Normalize(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// markHighlights turns ==text== into placeholder-wrapped text.
func markHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// convertMarkPlaceholders turns placeholders into <mark> tags.
func convertMarkPlaceholders(content string) string {
	return strings.NewReplacer(MarkStartPlaceholder, "<mark>", MarkEndPlaceholder, "</mark>").Replace(content)
}
