package math

import "math"

// Epsilon is the tolerance used for all floating-point equality in the
// kernel. Chained transforms accumulate rounding error, so exact
// comparison is never meaningful for computed values.
const Epsilon = 1e-9

// ApproxEqual reports whether two floats are equal within Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// ApproxEqualEps reports whether two floats are equal within eps, for
// call sites that need a looser tolerance than Epsilon.
func ApproxEqualEps(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
