// Package markup parses the small markdown subset used by blog articles.
//
// Supported lines:
//
//	## Heading            level 2
//	### Heading           level 3
//	- item / * item       unordered list
//	1. item               ordered list
//	| a | b |             table (needs a second "|" line)
//	anything else         paragraph
//
// Blank lines end a list. Paragraphs, list items and table cells carry
// inline **bold**, *italic* and `code` spans; headings do not. Parsing never
// fails: unbalanced delimiters stay literal text and ragged tables keep
// their ragged rows.
//
// Embedded HTML is not interpreted. RenderHTML escapes all text.
package markup
