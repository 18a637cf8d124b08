package dsl

import "math"

// floorDiv is integer division rounded toward negative infinity,
// matching the "⌊⌋" notation used throughout the bounds rules below
// (Go's native "/" truncates toward zero, which differs for negative
// operands).
func floorDiv(a, b int) int {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// floorSqrt returns floor(sqrt(u)) for u >= 0.
func floorSqrt(u int) int {
	if u <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(u)))
	for (r+1)*(r+1) <= u {
		r++
	}
	for r*r > u {
		r--
	}
	return r
}

// ceilSqrt returns ceil(sqrt(u)) for u >= 0.
func ceilSqrt(u int) int {
	if u <= 0 {
		return 0
	}
	r := floorSqrt(u)
	if r*r < u {
		r++
	}
	return r
}

// sqrBounds is the square-root envelope shared by sqr_bounds and the
// SQR lambda: given the envelope [lower, upper), returns the single
// operand interval whose square lands in range.
func sqrBounds(lower, upper int) (int, int) {
	l := maxInt(0, lower)
	u := upper - 1
	if l > u {
		return 0, 0
	}
	return -floorSqrt(u), ceilSqrt(u + 1)
}

// mulBounds is the reference implementation's mul_bounds: it mixes
// -(lo+1) and hi deliberately. Do not "fix" this for negative ranges —
// it is the exact formula the seed tests exercise.
func mulBounds(lo, hi int) (int, int) {
	return sqrBounds(0, minInt(-(lo+1), hi))
}

// addSubBounds is the shared operand bound for the binary + and -
// lambdas: each operand gets [floor(lo/2)+1, floor(hi/2)].
func addSubBounds(lo, hi int) (int, int) {
	return floorDiv(lo, 2) + 1, floorDiv(hi, 2)
}

// sumBounds is the sequence-operand bound for sum/SUM: the single
// sequence operand gets [floor(lo/L)+1, floor(hi/L)].
func sumBounds(lo, hi, l int) (int, int) {
	return floorDiv(lo, l) + 1, floorDiv(hi, l)
}

// countIndexBounds is the shared operand bound for count/index/take/
// drop/access: the integer operand (an index or count) is bounded by
// [0, L]; the sequence operand passes the output interval through
// unchanged. Returned in (int-operand, seq-operand) order.
func countIndexBounds(lo, hi, l int) [][2]int {
	return [][2]int{{0, l}, {lo, hi}}
}

// scanl1Bounds computes the operand bound for "SCANL1 <lambda>" given
// the inner lambda's source token.
func scanl1Bounds(lambdaSrc string, lo, hi, l int) [][2]int {
	switch lambdaSrc {
	case "+", "-":
		return [][2]int{{floorDiv(lo, l) + 1, floorDiv(hi, l)}}
	case "*":
		base0 := maxInt(0, lo) + 1
		base1 := maxInt(0, hi)
		return [][2]int{{
			int(math.Pow(float64(base0), 1.0/float64(l))),
			int(math.Pow(float64(base1), 1.0/float64(l))),
		}}
	case "MIN", "MAX":
		return [][2]int{{lo, hi}}
	default:
		return [][2]int{{lo, hi}}
	}
}
