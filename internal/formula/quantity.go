package formula

import (
	"math"
	"strconv"
)

// Undefined is printed in place of values that have no meaningful result.
const Undefined = "—"

// Quantity is a computed value that is either finite or explicitly undefined.
// The zero value is undefined.
type Quantity struct {
	value   float64
	defined bool
}

// Defined wraps v, treating NaN and ±Inf as undefined.
func Defined(v float64) Quantity {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{}
	}
	return Quantity{value: v, defined: true}
}

// None returns an undefined Quantity.
func None() Quantity {
	return Quantity{}
}

// Value returns the wrapped value and whether it is defined.
func (q Quantity) Value() (float64, bool) {
	return q.value, q.defined
}

// IsDefined reports whether q holds a finite value.
func (q Quantity) IsDefined() bool {
	return q.defined
}

// Or returns the value, or fallback when q is undefined.
func (q Quantity) Or(fallback float64) float64 {
	if !q.defined {
		return fallback
	}
	return q.value
}

// Fixed formats q with prec decimals, or Undefined.
func (q Quantity) Fixed(prec int) string {
	if !q.defined {
		return Undefined
	}
	return strconv.FormatFloat(q.value, 'f', prec, 64)
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	if !q.defined {
		return Undefined
	}
	return strconv.FormatFloat(q.value, 'g', -1, 64)
}

// roundHalfUp rounds like JavaScript's Math.round: halves go toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
