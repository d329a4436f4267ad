package pipeline

import "errors"

// Sentinel errors for the article pipeline.
var (
	ErrUnknownEngine  = errors.New("unknown engine")
	ErrEmptyContent   = errors.New("content is empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrTemplateParse  = errors.New("template parse failed")
	ErrPageRender     = errors.New("page rendering failed")
)
