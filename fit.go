package bezier

// maxFitIterations is the number of times the sample parameters are refined
// before a fit that is close to good enough gets split instead.
const maxFitIterations = 4

// FitCurve returns a sequence of connected curves passing through the first
// and last of points and approximating the others to within maxError, such
// as when turning the sampled positions of a pen into a brush stroke.
//
// The fit follows Schneider's algorithm from "An Algorithm for
// Automatically Fitting Digitized Curves" (Graphics Gems, 1990). A single
// curve is fitted by least squares, with the samples placed on it by chord
// length. If it misses by a little, the samples' parameters are refined
// with Newton's method; if it misses by a lot, the points are split where
// the fit is worst and each half is fitted separately, keeping the tangent
// continuous across the split.
//
// Consecutive duplicate points are ignored. FitCurve returns nil if there
// are fewer than two distinct points.
func FitCurve(points []Point, maxError float64) []Curve {
	pts := make([]Point, 0, len(points))
	for _, pt := range points {
		if len(pts) == 0 || pts[len(pts)-1] != pt {
			pts = append(pts, pt)
		}
	}
	if len(pts) < 2 {
		return nil
	}
	n := len(pts)
	startTan := pts[1].Sub(pts[0]).Normalize()
	endTan := pts[n-2].Sub(pts[n-1]).Normalize()
	return fitCubic(nil, pts, startTan, endTan, maxError)
}

// fitCubic appends curves fitting pts to out. The tangents are unit vectors
// pointing from each end into the curve.
func fitCubic(out []Curve, pts []Point, startTan, endTan Point, maxError float64) []Curve {
	first, last := pts[0], pts[len(pts)-1]
	if len(pts) == 2 {
		d := first.Distance(last) / 3
		return append(out, Curve{first, first.Add(startTan.Mul(d)), last.Add(endTan.Mul(d)), last})
	}

	u := chordLengthParams(pts)
	c := generateBezier(pts, u, startTan, endTan)
	maxDist, split := fitError(pts, c, u)
	if maxDist <= maxError {
		return append(out, c)
	}
	if maxDist <= maxError*4 {
		for range maxFitIterations {
			u = reparameterize(pts, u, c)
			c = generateBezier(pts, u, startTan, endTan)
			maxDist, split = fitError(pts, c, u)
			if maxDist <= maxError {
				return append(out, c)
			}
		}
	}

	center := pts[split-1].Sub(pts[split+1])
	if center.Hypot2() == 0 {
		center = pts[split-1].Sub(pts[split]).Perp()
	}
	center = center.Normalize()
	out = fitCubic(out, pts[:split+1], startTan, center, maxError)
	return fitCubic(out, pts[split:], center.Negate(), endTan, maxError)
}

// chordLengthParams assigns each point a parameter proportional to the
// distance travelled along the polyline through the points.
func chordLengthParams(pts []Point) []float64 {
	u := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		u[i] = u[i-1] + pts[i].Distance(pts[i-1])
	}
	total := u[len(u)-1]
	for i := range u {
		u[i] /= total
	}
	return u
}

// generateBezier finds the lengths of the control arms along the given
// tangents that minimize the squared distances between the points and the
// curve at their parameters.
func generateBezier(pts []Point, u []float64, startTan, endTan Point) Curve {
	first, last := pts[0], pts[len(pts)-1]
	var c00, c01, c11, x0, x1 float64
	for i, t := range u {
		mt := 1 - t
		b0 := mt * mt * mt
		b1 := 3 * t * mt * mt
		b2 := 3 * t * t * mt
		b3 := t * t * t
		a1 := startTan.Mul(b1)
		a2 := endTan.Mul(b2)
		c00 += a1.Dot(a1)
		c01 += a1.Dot(a2)
		c11 += a2.Dot(a2)
		rest := pts[i].Sub(first.Mul(b0 + b1)).Sub(last.Mul(b2 + b3))
		x0 += a1.Dot(rest)
		x1 += a2.Dot(rest)
	}

	segLen := first.Distance(last)
	alpha1, alpha2 := segLen/3, segLen/3
	if det := c00*c11 - c01*c01; det != 0 {
		a1 := (x0*c11 - x1*c01) / det
		a2 := (c00*x1 - c01*x0) / det
		// Negative or tiny arms produce loops or cusps; fall back to the
		// heuristic instead.
		if eps := 1e-6 * segLen; a1 >= eps && a2 >= eps {
			alpha1, alpha2 = a1, a2
		}
	}
	return Curve{first, first.Add(startTan.Mul(alpha1)), last.Add(endTan.Mul(alpha2)), last}
}

// fitError returns the largest distance between a point and its position on
// the curve, and the index of the interior point where it occurs.
func fitError(pts []Point, c Curve, u []float64) (float64, int) {
	split := len(pts) / 2
	var maxDist float64
	for i := 1; i < len(pts)-1; i++ {
		if d := c.Eval(u[i]).Distance(pts[i]); d > maxDist {
			maxDist = d
			split = i
		}
	}
	return maxDist, split
}

// reparameterize moves each parameter closer to the point on c nearest to
// its sample with a step of Newton's method.
func reparameterize(pts []Point, u []float64, c Curve) []float64 {
	d1, d2, d3 := c.Derivative()
	ddx1, ddx2 := Derivative3(d1.X, d2.X, d3.X)
	ddy1, ddy2 := Derivative3(d1.Y, d2.Y, d3.Y)
	out := make([]float64, len(u))
	for i, t := range u {
		diff := c.Eval(t).Sub(pts[i])
		q1 := c.Tangent(t)
		q2 := Pt(DeCasteljau2(t, ddx1, ddx2), DeCasteljau2(t, ddy1, ddy2))
		num := diff.Dot(q1)
		den := q1.Dot(q1) + diff.Dot(q2)
		if den == 0 {
			out[i] = t
			continue
		}
		out[i] = min(max(t-num/den, 0), 1)
	}
	return out
}
