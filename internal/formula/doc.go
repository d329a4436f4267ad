// Package formula implements the closed-form calculators behind each tool.
//
// Every calculator is a pure function from a small input struct to a result
// struct. Nothing here performs I/O, keeps state, or depends on another
// calculator's output, so calling a calculator twice with the same input
// always yields the same result.
//
// # Degenerate Input
//
// Inputs are not validated here; callers bind and range-check them first
// (see internal/bind). Formulas that could still divide by zero or take the
// logarithm of a non-positive number return an undefined Quantity instead
// of NaN or Inf:
//
//	r := formula.Aspect(formula.AspectInput{Width: 1920, Height: 0})
//	if _, ok := r.Decimal.Value(); !ok {
//	    // show a placeholder
//	}
//
// # Units
//
// Distances are in feet unless a Unit field says otherwise. Temperatures
// follow the unit system: Fahrenheit with feet, Celsius with meters.
package formula
