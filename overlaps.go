package bezier

import "math"

// TForPoint returns the parameter at which c passes within [SmallDistance] of
// pt, and false if it doesn't. If the curve passes pt more than once, the
// closest match is returned.
func (c Curve) TForPoint(pt Point) (float64, bool) {
	const epsilon = 1e-6
	best := math.Inf(1)
	var bestT float64
	try := func(t float64) {
		if d := c.Eval(t).DistanceSquared(pt); d < best {
			best = d
			bestT = t
		}
	}

	px0, px1, px2, px3 := cubicBezCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicBezCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	xs, nx := unitCubicRoots(px0-pt.X, px1, px2, px3, epsilon)
	ys, ny := unitCubicRoots(py0-pt.Y, py1, py2, py3, epsilon)
	for _, t := range xs[:nx] {
		try(t)
	}
	for _, t := range ys[:ny] {
		try(t)
	}
	// Constant coordinates have no roots; the end points cover curves that
	// collapse to a point or an axis-aligned line.
	try(0)
	try(1)

	if best < SmallDistance*SmallDistance {
		return bestT, true
	}
	return 0, false
}

// OverlappingRegion determines whether c1 and c2 coincide over some range,
// as happens when both are sections of the same curve. It returns the
// parameter ranges of the shared section on c1 and on c2; a range may run
// backwards if the curves have opposite directions.
//
// Both ends of the shared section have to be an end point of one of the
// curves, so curves merely crossing or touching don't overlap.
func OverlappingRegion(c1, c2 Curve) (t1, t2 [2]float64, ok bool) {
	t2 = [2]float64{0, 1}

	if t, ok := c1.TForPoint(c2.P0); ok {
		t1[0] = t
	} else if t, ok := c2.TForPoint(c1.P0); ok {
		t1[0] = 0
		t2[0] = t
	} else {
		return t1, t2, false
	}

	if t, ok := c1.TForPoint(c2.P3); ok {
		t1[1] = t
	} else if t, ok := c2.TForPoint(c1.P3); ok {
		t1[1] = 1
		t2[1] = t
	} else {
		return t1, t2, false
	}

	if math.Abs(t1[1]-t1[0]) < 1e-6 || math.Abs(t2[1]-t2[0]) < 1e-6 {
		// Sharing a single point isn't an overlap.
		return t1, t2, false
	}

	// Two overlapping straight lines: the control points are allowed to
	// differ as long as everything is collinear.
	chord := c1.Chord()
	if chord.Length() > 0 {
		collinear := func(pts ...Point) bool {
			for _, pt := range pts {
				if math.Abs(chord.Distance(pt)) >= SmallDistance {
					return false
				}
			}
			return true
		}
		if collinear(c1.P1, c1.P2, c2.P0, c2.P1, c2.P2, c2.P3) {
			return t1, t2, true
		}
	}

	s1 := c1.Subsegment(t1[0], t1[1])
	s2 := c2
	if t2 != [2]float64{0, 1} {
		s2 = c2.Subsegment(t2[0], t2[1])
	}
	near := func(a, b Point) bool {
		return a.DistanceSquared(b) < SmallDistance*SmallDistance
	}
	if near(s1.P1, s2.P1) && near(s1.P2, s2.P2) {
		return t1, t2, true
	}
	return t1, t2, false
}
