package pipeline

import (
	"context"
	"strings"
)

// InjectCSS inserts css as a <style> block before </head>, else right
// after the <body> tag, else at the start. css is escaped so it cannot
// close the style element.
func InjectCSS(ctx context.Context, document, css string) string {
	if css == "" || ctx.Err() != nil {
		return document
	}

	block := "<style>" + sanitizeCSS(css) + "</style>"
	lower := strings.ToLower(document)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return document[:idx] + block + document[idx:]
	}
	if idx := strings.Index(lower, "<body"); idx != -1 {
		if end := strings.Index(document[idx:], ">"); end != -1 {
			pos := idx + end + 1
			return document[:pos] + block + document[pos:]
		}
	}
	return block + document
}

// sanitizeCSS escapes "</" so the css cannot end the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
