// Package bind turns raw text parameters into validated calculator inputs.
//
// Parameters arrive as strings (from CLI --set flags or any other text
// source). Each value is parsed explicitly: non-numeric text, NaN and
// infinities are rejected with an *Error naming the field, so the formula
// package only ever sees finite numbers. Missing parameters take the
// calculator's documented defaults, and ranges are enforced with validator
// struct tags.
package bind
