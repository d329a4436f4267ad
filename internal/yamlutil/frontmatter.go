package yamlutil

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrNoFrontMatter       = errors.New("yamlutil: missing front matter")
	ErrUnclosedFrontMatter = errors.New("yamlutil: front matter is not closed")
)

var (
	frontMatterDelimiter     = []byte("---")
	frontMatterDelimiterLine = []byte("---\n")
)

// SplitFrontMatter separates a leading "---" fenced YAML block from the
// document body. CRLF line endings are accepted. Blank lines between the
// closing fence and the body are dropped.
func SplitFrontMatter(data []byte) (front, body []byte, err error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(data, frontMatterDelimiterLine) {
		return nil, data, ErrNoFrontMatter
	}
	rest := data[len(frontMatterDelimiterLine):]

	// The closing fence is a line holding only "---".
	offset := 0
	for {
		line, next, found := bytes.Cut(rest[offset:], []byte("\n"))
		if bytes.Equal(bytes.TrimRight(line, " \t"), frontMatterDelimiter) {
			front = rest[:offset]
			if found {
				body = next
			}
			return front, bytes.TrimLeft(body, "\n"), nil
		}
		if !found {
			return nil, data, ErrUnclosedFrontMatter
		}
		offset += len(line) + 1
	}
}

// UnmarshalFrontMatter decodes the front matter of data into v with
// unknown fields rejected, and returns the body.
func UnmarshalFrontMatter(data []byte, v any) ([]byte, error) {
	front, body, err := SplitFrontMatter(data)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(front)) == 0 {
		return nil, fmt.Errorf("%w: empty block", ErrNoFrontMatter)
	}
	if err := UnmarshalStrict(front, v); err != nil {
		return nil, err
	}
	return body, nil
}
