package bezier

import "math"

// FatLine is a line with a width: the region of points whose signed distance
// from the line lies within [DMin, DMax]. It is used by the Bézier clipping
// algorithm of Sederberg and Nishita.
type FatLine struct {
	Line Line
	DMin float64
	DMax float64

	// Coefficients of the line in implicit form, with a² + b² = 1.
	a, b, c float64
}

// NewFatLine returns a fat line along the chord of c that encloses the
// whole curve.
//
// The width is the estimate suggested by Sederberg and Nishita rather than
// the tightest fit: 3/4 of the control point distances if both lie on the
// same side of the chord, 4/9 otherwise.
//
// When the chord has no length, the line through the start point and the
// farthest control point is used instead. A curve that is a single point
// gets a zero-width fat line through that point.
func NewFatLine(c Curve) FatLine {
	l := c.Chord()
	a, b, cc := l.Coefficients()
	if a == 0 && b == 0 {
		return degenerateFatLine(c)
	}
	d1 := a*c.P1.X + b*c.P1.Y + cc
	d2 := a*c.P2.X + b*c.P2.Y + cc
	f := 4.0 / 9.0
	if d1*d2 > 0 {
		f = 3.0 / 4.0
	}
	return FatLine{
		Line: l,
		DMin: f * min(d1, d2, 0),
		DMax: f * max(d1, d2, 0),
		a:    a,
		b:    b,
		c:    cc,
	}
}

// NewPerpendicularFatLine returns a fat line through the start of c,
// perpendicular to its chord, enclosing all four control points. Clipping
// against it as well as against [NewFatLine] narrows down intersections of
// curves that are nearly parallel.
func NewPerpendicularFatLine(c Curve) FatLine {
	dir := c.P3.Sub(c.P0)
	if dir.Hypot2() == 0 {
		dir = farthestControlPoint(c).Sub(c.P0)
	}
	if dir.Hypot2() == 0 {
		return degenerateFatLine(c).perpendicular()
	}
	l := Line{c.P0, c.P0.Add(dir.Perp())}
	return fatLineEnclosing(l, c)
}

// fatLineEnclosing returns a fat line along l just wide enough to contain
// all control points of c.
func fatLineEnclosing(l Line, c Curve) FatLine {
	a, b, cc := l.Coefficients()
	fl := FatLine{Line: l, a: a, b: b, c: cc}
	for _, pt := range [4]Point{c.P0, c.P1, c.P2, c.P3} {
		d := fl.Distance(pt)
		fl.DMin = min(fl.DMin, d)
		fl.DMax = max(fl.DMax, d)
	}
	return fl
}

func farthestControlPoint(c Curve) Point {
	far := c.P0
	var dist float64
	for _, pt := range [3]Point{c.P1, c.P2, c.P3} {
		if d := pt.DistanceSquared(c.P0); d > dist {
			far = pt
			dist = d
		}
	}
	return far
}

func degenerateFatLine(c Curve) FatLine {
	far := farthestControlPoint(c)
	if far == c.P0 {
		// A vertical line through the point.
		return FatLine{Line: Line{c.P0, c.P0.Add(Pt(0, -1))}, a: 1, b: 0, c: -c.P0.X}
	}
	return fatLineEnclosing(Line{c.P0, far}, c)
}

func (fl FatLine) perpendicular() FatLine {
	dir := fl.Line.P1.Sub(fl.Line.P0).Perp()
	l := Line{fl.Line.P0, fl.Line.P0.Add(dir)}
	a, b, c := l.Coefficients()
	return FatLine{Line: l, a: a, b: b, c: c}
}

// Distance returns the signed distance of pt from the fat line's center
// line. See [Line.Coefficients] for the sign convention.
func (fl FatLine) Distance(pt Point) float64 {
	return fl.a*pt.X + fl.b*pt.Y + fl.c
}

// ClipT returns the range of parameters of c outside of which c is
// guaranteed not to be within the fat line. It returns false if no part of c
// can be.
//
// It uses the convex hull of the distance curve, the explicit Bézier
// (t, d(t)) whose control points are (i/3, distance of the i-th control
// point).
func (fl FatLine) ClipT(c Curve) (t0, t1 float64, ok bool) {
	const epsilon = 1e-12
	lo := fl.DMin - epsilon
	hi := fl.DMax + epsilon
	ds := [4]float64{fl.Distance(c.P0), fl.Distance(c.P1), fl.Distance(c.P2), fl.Distance(c.P3)}

	t0, t1 = math.Inf(1), math.Inf(-1)
	add := func(t float64) {
		t0 = min(t0, t)
		t1 = max(t1, t)
	}
	for i, d := range ds {
		if d >= lo && d <= hi {
			add(float64(i) / 3)
		}
	}
	// Edges of the hull are among the six segments connecting pairs of
	// points. Crossings of the band's limits by segments inside the hull
	// lie within the range found from the hull's edges.
	for i := range 4 {
		for j := i + 1; j < 4; j++ {
			for _, limit := range [2]float64{lo, hi} {
				di := ds[i] - limit
				dj := ds[j] - limit
				if di*dj >= 0 {
					continue
				}
				ti := float64(i) / 3
				tj := float64(j) / 3
				add(ti + (tj-ti)*di/(di-dj))
			}
		}
	}
	if t0 > t1 {
		return 0, 0, false
	}
	return max(t0, 0), min(t1, 1), true
}
