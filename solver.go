package mapline

import "math"

// Quadratic root solving for curve extrema, after kurbo's solver.

// solveQuadratic finds real roots of ax^2 + bx + c = 0, sorted ascending.
// A zero or near-zero a degrades to the linear equation.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if c == 0 && b == 0 {
			return []float64{0}
		}
		return nil
	}

	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	switch {
	case !isFinite(arg):
		root1 = -sc1
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	default:
		// Numerically stable form, avoids cancellation.
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}

	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticInUnitInterval returns the roots of ax^2 + bx + c = 0 that
// lie in [0, 1], clamping values within 1e-12 of the boundaries.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var result []float64
	for _, r := range solveQuadratic(a, b, c) {
		if r < -eps || r > 1+eps {
			continue
		}
		result = append(result, math.Min(1, math.Max(0, r)))
	}
	return result
}
