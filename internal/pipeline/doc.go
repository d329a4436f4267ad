// Package pipeline turns article markdown into HTML.
//
// Stages:
//   - normalization (line endings, blank line runs, ==highlight== marks)
//   - rendering with one of two engines: "lite", the constrained markup
//     renderer used by the site, or "gfm", goldmark with GitHub flavored
//     markdown, footnotes and chroma highlighting
//   - heading anchors and an optional numbered table of contents
//   - page assembly from an assets.TemplateSet with the style sheet
//     injected into <head>
package pipeline
