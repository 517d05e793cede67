package bezier

import "math"

// negligibleCoefficient is the size, relative to the largest lower-order
// coefficient, below which a leading coefficient is treated as zero. Curves
// built from lines carry rounding residue of this order in their quadratic
// and cubic terms.
const negligibleCoefficient = 1e-12

// SolveQuadratic returns the real roots of c0 + c1 x + c2 x² = 0 in
// ascending order, and how many there are.
//
// A c2 that is negligible next to c0 and c1 is treated as zero and the
// linear root is returned. If all coefficients are zero, a single 0 is
// returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if math.Abs(c2) <= negligibleCoefficient*max(math.Abs(c0), math.Abs(c1)) {
		switch {
		case c1 != 0:
			return [2]float64{polishRoot(c0, c1, c2, 0, -c0/c1)}, 1
		case c0 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}

	b := c1 / c2
	c := c0 / c2
	disc := b*b - 4*c
	var r1 float64
	switch {
	case math.IsInf(disc, 0):
		// b² overflowed; x² + b x ≈ 0 gives the large root.
		r1 = -b
	case disc < 0:
		return [2]float64{}, 0
	case disc == 0:
		return [2]float64{-0.5 * b}, 1
	default:
		// Avoid cancellation by never subtracting values of equal sign.
		r1 = -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	}
	r2 := c / r1
	if math.IsInf(r2, 0) || math.IsNaN(r2) {
		return [2]float64{r1}, 1
	}
	r1 = polishRoot(c0, c1, c2, 0, r1)
	r2 = polishRoot(c0, c1, c2, 0, r2)
	return [2]float64{min(r1, r2), max(r1, r2)}, 2
}

// SolveCubic returns the real roots of c0 + c1 x + c2 x² + c3 x³ = 0 and
// how many there are. The roots are not sorted.
//
// It follows Blinn's "How to Solve a Cubic Equation" as presented at
// https://momentsingraphics.de/CubicRoots.html, with each root refined by
// Newton steps. A c3 that is negligible next to the other coefficients is
// treated as zero and the quadratic is solved instead.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	lower := max(math.Abs(c0), math.Abs(c1), math.Abs(c2))
	if math.Abs(c3) <= negligibleCoefficient*lower || math.IsInf(1/c3, 0) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}

	// Monic form x³ + 3a x² + 3b x + c.
	a := c2 / (3 * c3)
	b := c1 / (3 * c3)
	c := c0 / c3

	delta0 := math.FMA(-a, a, b)
	delta1 := math.FMA(-b, a, c)
	delta2 := a*c - b*b
	disc := 4*delta0*delta2 - delta1*delta1
	// Depressed cubic term.
	dx := math.FMA(-2*a, delta0, delta1)

	var roots [3]float64
	var n int
	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * dx
		roots[0] = math.Cbrt(r+sq) + math.Cbrt(r-sq) - a
		n = 1
	case disc == 0:
		t := math.Copysign(math.Sqrt(-delta0), dx)
		roots[0] = t - a
		roots[1] = -2*t - a
		n = 2
	default:
		th := math.Atan2(math.Sqrt(disc), -dx) / 3
		sin, cos := math.Sincos(th)
		s3 := sin * math.Sqrt(3)
		scale := 2 * math.Sqrt(-delta0)
		roots[0] = math.FMA(scale, cos, -a)
		roots[1] = math.FMA(scale, 0.5*(-cos+s3), -a)
		roots[2] = math.FMA(scale, 0.5*(-cos-s3), -a)
		n = 3
	}
	for i := range roots[:n] {
		roots[i] = polishRoot(c0, c1, c2, c3, roots[i])
	}
	return roots, n
}

// polishRoot improves an approximate root x of c0 + c1 x + c2 x² + c3 x³
// with up to two Newton steps, keeping a step only if it reduces the
// residual.
func polishRoot(c0, c1, c2, c3, x float64) float64 {
	f := func(x float64) float64 { return c0 + x*(c1+x*(c2+x*c3)) }
	y := f(x)
	for range 2 {
		if y == 0 {
			break
		}
		dy := c1 + x*(2*c2+x*3*c3)
		if dy == 0 {
			break
		}
		nx := x - y/dy
		ny := f(nx)
		if math.IsNaN(ny) || math.Abs(ny) >= math.Abs(y) {
			break
		}
		x, y = nx, ny
	}
	return x
}

// unitCubicRoots returns the roots of c0 + c1 t + c2 t² + c3 t³ = 0 that lie
// within [−eps, 1+eps], clamped to [0, 1]. The zero polynomial has no
// roots.
func unitCubicRoots(c0, c1, c2, c3, eps float64) ([3]float64, int) {
	var out [3]float64
	if c0 == 0 && c1 == 0 && c2 == 0 && c3 == 0 {
		return out, 0
	}
	roots, n := SolveCubic(c0, c1, c2, c3)
	var outN int
	for _, t := range roots[:n] {
		if t >= -eps && t <= 1+eps {
			out[outN] = min(max(t, 0), 1)
			outN++
		}
	}
	return out, outN
}

// cubicBezCoefficients returns polynomial coefficients given cubic Bézier
// weights, such that B(t) = p0 + p1 t + p2 t² + p3 t³.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}
