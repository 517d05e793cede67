package bezier

// DefaultSearchTolerance is the bounding box size at which
// [CurveIntersectsLine] stops subdividing.
const DefaultSearchTolerance = 0.01

// SearchBounds performs a subdivision search on c. It repeatedly splits the
// curve in half and keeps the halves whose bounding box satisfies match,
// until a box's diagonal is no larger than minSize. It returns the parameter
// at the middle of each such final interval, in no particular order.
//
// A target lying very close to a split point may produce a match on either
// side of it, so callers must be prepared for more results than there are
// actual solutions.
func SearchBounds(c Curve, minSize float64, match func(Rect) bool) []float64 {
	type pending struct {
		c      Curve
		t0, t1 float64
	}
	// Intervals narrower than this can't be split meaningfully anymore.
	const minInterval = 1e-12

	var out []float64
	stack := []pending{{c, 0, 1}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mid := (p.t0 + p.t1) / 2
		l, r := p.c.Subdivide(0.5)
		halves := [2]pending{{l, p.t0, mid}, {r, mid, p.t1}}
		for _, h := range halves {
			bbox := h.c.BoundingBox()
			if !match(bbox) {
				continue
			}
			if bbox.Diagonal() <= minSize || h.t1-h.t0 < minInterval {
				out = append(out, (h.t0+h.t1)/2)
			} else {
				stack = append(stack, h)
			}
		}
	}
	return out
}

// CurveIntersectsLine finds the parameters at which c crosses the segment l
// by bisection, subdividing until the bounding box of a candidate section is
// no larger than tolerance. A tolerance of zero or less uses
// [DefaultSearchTolerance].
//
// Near tangencies, and where the line passes close to a split point, more
// candidates than actual crossings may be returned. Use [Curve.IntersectLine]
// for an algebraic solution.
func CurveIntersectsLine(c Curve, l Line, tolerance float64) []float64 {
	if tolerance <= 0 {
		tolerance = DefaultSearchTolerance
	}
	return SearchBounds(c, tolerance, func(bbox Rect) bool {
		_, _, ok := bbox.ClipLine(l)
		return ok
	})
}
