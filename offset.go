package bezier

// offsetSamples is the number of intervals at which each section of an offset
// curve is sampled.
const offsetSamples = 6

// OffsetCurve approximates the curve running alongside c at a distance that
// changes linearly with arc length from initialOffset at the start to
// finalOffset at the end, as used for strokes of varying width. Positive
// offsets are to the left of c in a y-up coordinate system.
//
// The curve is split at its extrema. Each section is sampled at evenly
// spaced parameters, the samples are moved along the normals, and a curve
// is fitted through them by least squares, keeping the end points and the
// directions there exact. The sections are joined end to end. No attempt is
// made to bound the error, so bends that are tight relative to the offset
// give poor results.
func OffsetCurve(c Curve, initialOffset, finalOffset float64) []Curve {
	total := c.Length(DefaultAccuracy)
	offsetAt := func(t float64) float64 {
		if total == 0 || initialOffset == finalOffset {
			return initialOffset
		}
		return initialOffset + (finalOffset-initialOffset)*c.Subsegment(0, t).Length(DefaultAccuracy)/total
	}
	point := func(t float64) Point {
		return c.Eval(t).Add(c.UnitNormal(t).Mul(offsetAt(t)))
	}

	ts, n := c.Extrema()
	out := make([]Curve, 0, n+1)
	prevT := 0.0
	for _, t := range append(ts[:n:n], 1) {
		if t-prevT < 1e-9 {
			continue
		}
		out = append(out, offsetSection(c, point, prevT, t))
		prevT = t
	}
	return out
}

func offsetSection(c Curve, point func(float64) Point, t0, t1 float64) Curve {
	pts := make([]Point, offsetSamples+1)
	u := make([]float64, offsetSamples+1)
	for i := range pts {
		u[i] = float64(i) / offsetSamples
		pts[i] = point(t0 + (t1-t0)*u[i])
	}

	// The directions of the offset differ from those of c where the offset
	// changes.
	h := (t1 - t0) * 1e-4
	startTan := point(t0 + h).Sub(pts[0])
	endTan := point(t1 - h).Sub(pts[offsetSamples])
	if startTan.Hypot2() == 0 || endTan.Hypot2() == 0 {
		start, end := c.Subsegment(t0, t1).Tangents()
		startTan, endTan = start, end.Negate()
	}
	return generateBezier(pts, u, startTan.Normalize(), endTan.Normalize())
}
